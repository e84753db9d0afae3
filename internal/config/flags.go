package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagLump   = flag.Bool("lump", false, "Merge same-named regions into one surface")
	flagNoLump = flag.Bool("no-lump", false, "Keep every region as its own surface")
	flagLog    = flag.String("log", "", "Write logs to the given file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLump {
		cfg.Mesh.LumpRegions = true
	}
	if *flagNoLump {
		cfg.Mesh.LumpRegions = false
	}
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
}
