package sky

import (
	"time"

	"github.com/atlaslab/cinemap/internal/clock"
	"github.com/atlaslab/cinemap/internal/render"
	"github.com/atlaslab/cinemap/pkg/colorx"
)

// TransitionDuration is the total wall time of a discrete preset switch.
const TransitionDuration = 1500 * time.Millisecond

// TransitionSteps is the fixed number of eased steps per switch.
const TransitionSteps = 60

// transitionStarThreshold is the step progress past which star visibility
// snaps toward the destination preset. Not the same constant as
// cycleStarThreshold; the two drivers switch stars at different points.
const transitionStarThreshold = 0.5

// transition is the state of one in-flight preset switch. At most one exists
// at a time; a new switch request replaces it, starting from the colors last
// put on screen.
type transition struct {
	from     render.GradientStops
	to       Colors
	toPreset Preset

	step   int
	handle clock.Handle
}

// stepStops returns the eased blend of all four stops at the given step.
func (t *transition) stepStops(step int) render.GradientStops {
	eased := colorx.EaseInOutCubic(float64(step) / TransitionSteps)
	toStops := t.to.Stops()
	return render.GradientStops{
		Top:     colorx.LerpColor(t.from.Top, toStops.Top, eased),
		Middle1: colorx.LerpColor(t.from.Middle1, toStops.Middle1, eased),
		Middle2: colorx.LerpColor(t.from.Middle2, toStops.Middle2, eased),
		Bottom:  colorx.LerpColor(t.from.Bottom, toStops.Bottom, eased),
	}
}

func (t *transition) cancel() {
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
}
