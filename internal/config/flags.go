package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMode       = flag.String("mode", "", "Generation mode: landscape or sphere")
	flagSeed       = flag.String("seed", "", "Noise seed")
	flagSteps      = flag.Int("steps", -1, "Terrace steps (0 disables terracing)")
	flagDiameter   = flag.Float64("diameter", 0, "Landscape diameter")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Mode = *flagMode
	}
	if *flagSeed != "" {
		seed, err := strconv.Atoi(*flagSeed)
		if err != nil {
			return err
		}
		cfg.Landscape.Seed = seed
	}
	if *flagSteps >= 0 {
		cfg.Landscape.Steps = *flagSteps
	}
	if *flagDiameter > 0 {
		cfg.Landscape.Diameter = *flagDiameter
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	return nil
}
