package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test playback defaults
	if cfg.Playback.FrameInterval != 16*time.Millisecond {
		t.Errorf("expected frame interval 16ms, got %v", cfg.Playback.FrameInterval)
	}

	// Test sky defaults
	if cfg.Sky.Pattern != "blue-dominant" {
		t.Errorf("expected pattern 'blue-dominant', got %s", cfg.Sky.Pattern)
	}
	if cfg.Sky.Preset != "blue" {
		t.Errorf("expected preset 'blue', got %s", cfg.Sky.Preset)
	}
	if cfg.Sky.TickInterval != 16*time.Millisecond {
		t.Errorf("expected tick interval 16ms, got %v", cfg.Sky.TickInterval)
	}
	if cfg.Sky.CycleOnStart {
		t.Error("expected cycle_on_start to be false by default")
	}

	// Test preview defaults
	if !cfg.Preview.Enabled {
		t.Error("expected preview to be enabled by default")
	}
	if cfg.Preview.Addr != "127.0.0.1:8777" {
		t.Errorf("expected preview addr 127.0.0.1:8777, got %s", cfg.Preview.Addr)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
playback:
  frame_interval: 33ms

sky:
  pattern: "night-dominant"
  preset: "night"
  tick_interval: 25ms
  cycle_on_start: true
  presets_file: "skies.yaml"

preview:
  enabled: false
  addr: "0.0.0.0:9000"

logging:
  level: "debug"
  log_file: "editor.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Playback.FrameInterval != 33*time.Millisecond {
		t.Errorf("expected frame interval 33ms, got %v", cfg.Playback.FrameInterval)
	}

	if cfg.Sky.Pattern != "night-dominant" {
		t.Errorf("expected pattern 'night-dominant', got %s", cfg.Sky.Pattern)
	}
	if cfg.Sky.Preset != "night" {
		t.Errorf("expected preset 'night', got %s", cfg.Sky.Preset)
	}
	if cfg.Sky.TickInterval != 25*time.Millisecond {
		t.Errorf("expected tick interval 25ms, got %v", cfg.Sky.TickInterval)
	}
	if !cfg.Sky.CycleOnStart {
		t.Error("expected cycle_on_start to be true")
	}
	if cfg.Sky.PresetsFile != "skies.yaml" {
		t.Errorf("expected presets file 'skies.yaml', got %s", cfg.Sky.PresetsFile)
	}

	if cfg.Preview.Enabled {
		t.Error("expected preview to be disabled")
	}
	if cfg.Preview.Addr != "0.0.0.0:9000" {
		t.Errorf("expected preview addr 0.0.0.0:9000, got %s", cfg.Preview.Addr)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "editor.log" {
		t.Errorf("expected log file 'editor.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
sky:
  tick_interval: not a duration
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("sky:\n  preset: sunset\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "preview flag",
			setup: func() {
				*flagPreview = "127.0.0.1:9100"
			},
			verify: func(cfg *Config) {
				if !cfg.Preview.Enabled {
					t.Error("expected preview to be enabled with preview flag")
				}
				if cfg.Preview.Addr != "127.0.0.1:9100" {
					t.Errorf("expected preview addr 127.0.0.1:9100, got %s", cfg.Preview.Addr)
				}
			},
			teardown: func() {
				*flagPreview = ""
			},
		},
		{
			name: "cycle flag",
			setup: func() {
				*flagCycle = true
			},
			verify: func(cfg *Config) {
				if !cfg.Sky.CycleOnStart {
					t.Error("expected cycle_on_start to be true with cycle flag")
				}
			},
			teardown: func() {
				*flagCycle = false
			},
		},
		{
			name: "no-cycle flag",
			setup: func() {
				*flagNoCycle = true
			},
			verify: func(cfg *Config) {
				if cfg.Sky.CycleOnStart {
					t.Error("expected cycle_on_start to be false with no-cycle flag")
				}
			},
			teardown: func() {
				*flagNoCycle = false
			},
		},
		{
			name: "pattern and presets flags",
			setup: func() {
				*flagPattern = "night-dominant"
				*flagPresets = "custom.yaml"
			},
			verify: func(cfg *Config) {
				if cfg.Sky.Pattern != "night-dominant" {
					t.Errorf("expected pattern 'night-dominant', got %s", cfg.Sky.Pattern)
				}
				if cfg.Sky.PresetsFile != "custom.yaml" {
					t.Errorf("expected presets file 'custom.yaml', got %s", cfg.Sky.PresetsFile)
				}
			},
			teardown: func() {
				*flagPattern = ""
				*flagPresets = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
sky:
  pattern: "night-dominant"
  preset: "sunset"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagPattern = "blue-dominant"
	defer func() {
		*flagConfig = ""
		*flagPattern = ""
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Pattern should be from flag, not file
	if cfg.Sky.Pattern != "blue-dominant" {
		t.Errorf("expected pattern 'blue-dominant' from flag, got %s", cfg.Sky.Pattern)
	}

	// Preset should be from file since no flag override
	if cfg.Sky.Preset != "sunset" {
		t.Errorf("expected preset 'sunset' from file, got %s", cfg.Sky.Preset)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Sky.Preset = "night"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Sky.Preset != "night" {
		t.Errorf("expected preset 'night' after round trip, got %s", loaded.Sky.Preset)
	}
}
