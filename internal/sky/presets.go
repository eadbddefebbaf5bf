// Package sky implements the procedural day-night color engine: a continuous
// oscillator that blends gradient colors from a wrapping phase clock, and a
// fixed-step eased transition used when the user switches presets discretely.
package sky

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atlaslab/cinemap/internal/render"
)

// Preset names one of the discrete sky configurations.
type Preset string

const (
	PresetBlue   Preset = "blue"
	PresetSunset Preset = "sunset"
	PresetNight  Preset = "night"
)

// Colors defines a preset's gradient at the four fixed stops plus the
// background fill behind the map.
type Colors struct {
	Top        string `yaml:"top"`
	Middle1    string `yaml:"middle1"`
	Middle2    string `yaml:"middle2"`
	Bottom     string `yaml:"bottom"`
	Background string `yaml:"background"`
}

// Stops converts to the renderer's gradient representation.
func (c Colors) Stops() render.GradientStops {
	return render.GradientStops{Top: c.Top, Middle1: c.Middle1, Middle2: c.Middle2, Bottom: c.Bottom}
}

// PresetTable maps preset names to their fixed colors.
type PresetTable map[Preset]Colors

// DefaultPresets returns the compiled-in sky presets.
func DefaultPresets() PresetTable {
	return PresetTable{
		PresetBlue: {
			Top:        "#2e6bb8",
			Middle1:    "#5e9bd4",
			Middle2:    "#a8cbe8",
			Bottom:     "#dceefb",
			Background: "#dceefb",
		},
		PresetSunset: {
			Top:        "#2b2d5e",
			Middle1:    "#b14a7a",
			Middle2:    "#f2814e",
			Bottom:     "#ffc56e",
			Background: "#ffc56e",
		},
		PresetNight: {
			Top:        "#02041a",
			Middle1:    "#0a1238",
			Middle2:    "#1b2a5e",
			Bottom:     "#2e3f78",
			Background: "#2e3f78",
		},
	}
}

// LoadPresets reads preset overrides from a YAML file and merges them over the
// defaults. Unknown preset names are rejected.
func LoadPresets(path string) (PresetTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets from %s: %w", path, err)
	}

	var raw map[Preset]Colors
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing presets from %s: %w", path, err)
	}

	table := DefaultPresets()
	for name, colors := range raw {
		if _, ok := table[name]; !ok {
			return nil, fmt.Errorf("unknown sky preset %q in %s", name, path)
		}
		table[name] = colors
	}
	return table, nil
}
