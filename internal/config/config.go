// Package config handles editor configuration loading and management.
package config

import "time"

// Config holds all editor settings.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Sky      SkyConfig      `yaml:"sky"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PlaybackConfig holds scene playback settings.
type PlaybackConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// SkyConfig holds day-night cycle settings.
type SkyConfig struct {
	Pattern      string        `yaml:"pattern"` // blue-dominant or night-dominant
	Preset       string        `yaml:"preset"`  // initial preset
	TickInterval time.Duration `yaml:"tick_interval"`
	CycleOnStart bool          `yaml:"cycle_on_start"`
	PresetsFile  string        `yaml:"presets_file"` // optional preset color overrides
}

// PreviewConfig holds websocket preview server settings.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			FrameInterval: 16 * time.Millisecond,
		},
		Sky: SkyConfig{
			Pattern:      "blue-dominant",
			Preset:       "blue",
			TickInterval: 16 * time.Millisecond,
			CycleOnStart: false,
			PresetsFile:  "",
		},
		Preview: PreviewConfig{
			Enabled: true,
			Addr:    "127.0.0.1:8777",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
