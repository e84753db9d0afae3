// Package config handles meshtool configuration loading and management.
package config

// Config holds all meshtool settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds mesh-processing settings.
type MeshConfig struct {
	// LumpRegions merges same-named regions into a single surface.
	LumpRegions bool `yaml:"lump_regions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			LumpRegions: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
