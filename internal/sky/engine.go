package sky

import (
	"math"

	"github.com/atlaslab/cinemap/internal/render"
	"github.com/atlaslab/cinemap/pkg/colorx"
	vmath "github.com/atlaslab/cinemap/pkg/math"
)

// CycleLength is the span of one full day-night cycle in phase time units.
const CycleLength = 24.0

// TickSeconds is how far the phase clock advances per engine tick.
const TickSeconds = 1.0 / 60.0

// cycleStarThreshold is the night intensity above which stars show while the
// continuous engine drives the sky. The discrete transition uses a different
// threshold (transitionStarThreshold); the two are deliberately kept apart.
const cycleStarThreshold = 0.3

// Pattern selects which pair of presets the oscillator blends between.
type Pattern string

const (
	PatternBlueDominant  Pattern = "blue-dominant"
	PatternNightDominant Pattern = "night-dominant"
)

// Frame is the full sky output for one tick: the four gradient stops, the
// background fill, star visibility, and the derived sun direction.
type Frame struct {
	Stops        render.GradientStops
	Background   string
	StarsVisible bool
	SunDir       vmath.Vec3
}

// Advance moves the phase clock one tick forward, wrapping at CycleLength.
func Advance(phase float64) float64 {
	return math.Mod(phase+TickSeconds, CycleLength)
}

// BlendFrame computes the sky output for a phase and pattern. Pure: equal
// inputs always produce equal frames.
func BlendFrame(phase float64, pattern Pattern, presets PresetTable) Frame {
	progress := phase / CycleLength
	angle := progress * 2 * math.Pi

	blue := presets[PresetBlue]
	sunset := presets[PresetSunset]
	night := presets[PresetNight]

	var frame Frame
	switch pattern {
	case PatternNightDominant:
		sunsetIntensity := math.Sin(angle*0.6)*0.5 + 0.5
		nightIntensity := math.Sin(angle+math.Pi/2)*0.5 + 0.5
		frame.Stops = blendStops(sunset, night, sunsetIntensity, nightIntensity)
		frame.StarsVisible = nightIntensity > cycleStarThreshold
	default: // blue-dominant
		blueIntensity := math.Sin(angle*0.4)*0.5 + 0.5
		sunsetIntensity := math.Sin(angle+math.Pi/4)*0.5 + 0.5
		frame.Stops = blendStops(sunset, blue, sunsetIntensity, blueIntensity)
		frame.StarsVisible = false
	}
	frame.Background = frame.Stops.Bottom
	frame.SunDir = SunDirection(phase)
	return frame
}

func blendStops(a, b Colors, weightA, weightB float64) render.GradientStops {
	return render.GradientStops{
		Top:     colorx.BlendColors(a.Top, b.Top, weightA, weightB),
		Middle1: colorx.BlendColors(a.Middle1, b.Middle1, weightA, weightB),
		Middle2: colorx.BlendColors(a.Middle2, b.Middle2, weightA, weightB),
		Bottom:  colorx.BlendColors(a.Bottom, b.Bottom, weightA, weightB),
	}
}

// TimeOfDay classifies the phase into a display band. Not consumed by any
// rendering logic.
func TimeOfDay(phase float64) string {
	progress := phase / CycleLength
	switch {
	case progress < 0.25:
		return "morning"
	case progress < 0.5:
		return "day"
	case progress < 0.75:
		return "evening"
	default:
		return "night"
	}
}
