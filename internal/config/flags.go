package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config  string
	Debug   bool
	LogFile string
	Workers int
	Comment string
}

// Register adds the configuration flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file (rotated)")
	fs.IntVar(&f.Workers, "workers", 0, "Parallel writes for packed models (0 = config/GOMAXPROCS)")
	fs.StringVar(&f.Comment, "comment", "", "Comment line written to PLY headers")
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Workers > 0 {
		cfg.Output.Workers = f.Workers
	}
	if f.Comment != "" {
		cfg.Output.Comment = f.Comment
	}
}
