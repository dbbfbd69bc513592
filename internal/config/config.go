// Package config handles generator and viewer configuration.
package config

// Config holds all settings.
type Config struct {
	Mode      string          `yaml:"mode"` // "landscape" or "sphere"
	Window    WindowConfig    `yaml:"window"`
	Landscape LandscapeConfig `yaml:"landscape"`
	Sphere    SphereConfig    `yaml:"sphere"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Generation modes.
const (
	ModeLandscape = "landscape"
	ModeSphere    = "sphere"
)

// Colour modes.
const (
	ColorModeRandom         = "random"
	ColorModeHeightGradient = "height_gradient"
	ColorModeNone           = "none"
)

// WindowConfig holds viewer display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// Vec2Config is a 2D offset.
type Vec2Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GradientKeyConfig is one colour stop, e.g. {time: 0.5, color: "#3a7d44"}.
type GradientKeyConfig struct {
	Time  float64 `yaml:"time"`
	Color string  `yaml:"color"`
}

// LandscapeConfig holds the landscape generation settings.
type LandscapeConfig struct {
	Diameter         float64 `yaml:"diameter"`
	MinDistance      float64 `yaml:"min_distance"`      // Poisson-disc spacing
	RejectionSamples int     `yaml:"rejection_samples"` // 5..100
	MaxIterations    int     `yaml:"max_iterations"`
	SamplerSeed      uint64  `yaml:"sampler_seed"` // Random source for sampling and random colours

	Seed               int        `yaml:"seed"`  // Noise coordinate shift
	Steps              int        `yaml:"steps"` // Terraces, 0..5
	WaterLevel         float64    `yaml:"water_level"`
	SnowLevel          float64    `yaml:"snow_level"`
	FloorLevel         float64    `yaml:"floor_level"`
	MinimumGroundLevel float64    `yaml:"minimum_ground_level"`
	Offset             Vec2Config `yaml:"offset"`

	Octaves     int     `yaml:"octaves"`
	Scale       float64 `yaml:"scale"`
	Dampening   float64 `yaml:"dampening"`   // 0..1
	Persistence float64 `yaml:"persistence"` // 0..1
	Lacunarity  float64 `yaml:"lacunarity"`
	HeightScale float64 `yaml:"height_scale"`

	ColorMode    string              `yaml:"color_mode"`
	GradientMode string              `yaml:"gradient_mode"` // "blend" or "fixed"
	Gradient     []GradientKeyConfig `yaml:"gradient"`
}

// SphereConfig holds the sphere patch settings.
type SphereConfig struct {
	PatchSize        float64 `yaml:"patch_size"`
	MinDistance      float64 `yaml:"min_distance"`
	RejectionSamples int     `yaml:"rejection_samples"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mode: ModeLandscape,
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Landscape: LandscapeConfig{
			Diameter:           40,
			MinDistance:        1,
			RejectionSamples:   30,
			SamplerSeed:        1,
			Seed:               0,
			Steps:              4,
			WaterLevel:         0.5,
			SnowLevel:          -1,
			FloorLevel:         10,
			MinimumGroundLevel: 0,
			Octaves:            4,
			Scale:              20,
			Dampening:          0.8,
			Persistence:        0.5,
			Lacunarity:         2,
			HeightScale:        6,
			ColorMode:          ColorModeHeightGradient,
			GradientMode:       "blend",
			Gradient: []GradientKeyConfig{
				{Time: 0, Color: "#2f6fb0"},
				{Time: 0.15, Color: "#e3d7a3"},
				{Time: 0.4, Color: "#4f8a3c"},
				{Time: 0.75, Color: "#7a6f66"},
				{Time: 1, Color: "#f4f6f8"},
			},
		},
		Sphere: SphereConfig{
			PatchSize:        1,
			MinDistance:      0.3,
			RejectionSamples: 30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
