// Package main generates a terrain without a window and logs a summary.
// It is useful for tuning parameters and for checking config files.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-terrain/internal/config"
	"github.com/Faultbox/lowpoly-terrain/internal/logger"
	"github.com/Faultbox/lowpoly-terrain/internal/scene"
	"github.com/Faultbox/lowpoly-terrain/internal/terrain"
)

var (
	flagRuns      = flag.Int("runs", 1, "Number of terrains to generate with consecutive sampler seeds")
	flagWriteConf = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagWriteConf != "" {
		if err := cfg.SaveTo(*flagWriteConf); err != nil {
			fmt.Fprintf(os.Stderr, "Write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, max(1, *flagRuns)); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, runs int) error {
	log := logger.Named("terraingen")
	host := scene.NewHost(&scene.Buffers{}, log.Named("scene"))

	for i := range runs {
		seed := cfg.Landscape.SamplerSeed + uint64(i)
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		gen := terrain.NewGenerator(rng, log.Named("terrain"))

		res, err := host.Generate(gen, cfg)
		if err != nil {
			return fmt.Errorf("run %d (sampler seed %d): %w", i, seed, err)
		}
		log.Info("terrain generated", append(scene.Summary(res, cfg), zap.Uint64("sampler_seed", seed))...)
	}
	return nil
}
