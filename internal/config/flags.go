package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagPreview = flag.String("preview", "", "Preview server listen address")
	flagCycle   = flag.Bool("cycle", false, "Start the day-night cycle immediately")
	flagNoCycle = flag.Bool("no-cycle", false, "Do not start the day-night cycle")
	flagPattern = flag.String("pattern", "", "Sky blend pattern (blue-dominant or night-dominant)")
	flagPresets = flag.String("presets", "", "Path to sky preset overrides")
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
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPreview != "" {
		cfg.Preview.Enabled = true
		cfg.Preview.Addr = *flagPreview
	}
	if *flagCycle {
		cfg.Sky.CycleOnStart = true
	}
	if *flagNoCycle {
		cfg.Sky.CycleOnStart = false
	}
	if *flagPattern != "" {
		cfg.Sky.Pattern = *flagPattern
	}
	if *flagPresets != "" {
		cfg.Sky.PresetsFile = *flagPresets
	}
}
