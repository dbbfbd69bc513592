// Package main is the interactive low-poly terrain viewer.
//
// Keys: R regenerates with a new sampler seed, G toggles the colour scheme,
// M switches between landscape and sphere patch, W toggles wireframe, F5
// reloads the config file, Esc quits. Drag to orbit, scroll to zoom.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-terrain/internal/config"
	"github.com/Faultbox/lowpoly-terrain/internal/logger"
	"github.com/Faultbox/lowpoly-terrain/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Low-poly Terrain Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg, config.ResolvedPath(), logger.Named("viewer"))
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return
	}
	logger.Info("viewer closed normally")
}
