// Package config handles converter configuration loading and management.
package config

import "github.com/SymphoniaLauren/MDL-Ply-Converter/pkg/formats"

// Config holds all converter settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig holds PLY output settings.
type OutputConfig struct {
	Workers int    `yaml:"workers"` // Parallel packed writes (0 = GOMAXPROCS)
	Comment string `yaml:"comment"` // PLY header comment line
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Workers: 0,
			Comment: formats.DefaultPLYComment,
		},
	}
}
