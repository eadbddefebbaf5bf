package sky

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atlaslab/cinemap/internal/clock"
	"github.com/atlaslab/cinemap/internal/render"
)

// DefaultTickInterval is the wall-clock spacing of cycle ticks. The phase
// advance per tick is fixed (TickSeconds) regardless of this interval.
const DefaultTickInterval = 16 * time.Millisecond

// State is a read-only snapshot of the sky subsystem.
type State struct {
	Preset           Preset
	Pattern          Pattern
	Phase            float64
	TimeOfDay        string
	Cycling          bool
	TransitionActive bool
}

// Controller owns the day-night cycle driver and the one-shot preset
// transitions. It is the single writer of the renderer's sky and background
// paint; while a transition runs, the continuous engine's output is gated off.
type Controller struct {
	mu sync.Mutex

	renderer render.Renderer
	sched    clock.Scheduler
	presets  PresetTable
	log      *zap.Logger

	tickInterval time.Duration

	preset  Preset
	pattern Pattern
	phase   float64
	cycling bool

	cycleHandle clock.Handle
	trans       *transition

	// lastStops tracks whatever gradient was last put on screen, by either
	// driver. A preempted transition restarts from here.
	lastStops render.GradientStops
	haveLast  bool
}

// NewController creates a sky controller starting at the blue preset with the
// blue-dominant pattern and the cycle stopped.
func NewController(renderer render.Renderer, sched clock.Scheduler, presets PresetTable, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if presets == nil {
		presets = DefaultPresets()
	}
	return &Controller{
		renderer:     renderer,
		sched:        sched,
		presets:      presets,
		log:          log,
		tickInterval: DefaultTickInterval,
		preset:       PresetBlue,
		pattern:      PatternBlueDominant,
	}
}

// State returns a snapshot of the current sky state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Preset:           c.preset,
		Pattern:          c.pattern,
		Phase:            c.phase,
		TimeOfDay:        TimeOfDay(c.phase),
		Cycling:          c.cycling,
		TransitionActive: c.trans != nil,
	}
}

// SetTickInterval changes the wall-clock spacing of cycle ticks. It applies
// the next time the cycle is started; a running cycle keeps its interval.
func (c *Controller) SetTickInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d <= 0 {
		d = DefaultTickInterval
	}
	c.tickInterval = d
}

// SetPattern selects the oscillator blend pattern. Takes effect on the next
// cycle tick.
func (c *Controller) SetPattern(p Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pattern = p
	c.log.Debug("sky pattern changed", zap.String("pattern", string(p)))
}

// SetCyclingEnabled starts or stops the day-night cycle. The phase clock
// resets to zero on both edges.
func (c *Controller) SetCyclingEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if on == c.cycling {
		return
	}
	c.phase = 0
	if on {
		c.cycling = true
		c.cycleHandle = c.sched.ScheduleRecurring(c.cycleTick, c.tickInterval)
		c.log.Info("day-night cycle started")
		return
	}
	c.cycling = false
	if c.cycleHandle != nil {
		c.cycleHandle.Cancel()
		c.cycleHandle = nil
	}
	c.log.Info("day-night cycle stopped")
}

// cycleTick advances the phase clock and, unless a transition is running,
// paints the computed frame.
func (c *Controller) cycleTick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cycling {
		return
	}
	c.phase = Advance(c.phase)

	// Transition owns the sky while active.
	if c.trans != nil {
		return
	}
	if !c.renderer.IsReady() {
		return // skipped for this tick, next tick retries
	}

	frame := BlendFrame(c.phase, c.pattern, c.presets)
	c.renderer.SetSkyGradientStops(frame.Stops)
	c.renderer.SetBackgroundColor(frame.Background)
	c.renderer.SetStarLayerVisible(frame.StarsVisible)
	c.renderer.SetSunDirection(frame.SunDir)
	c.lastStops = frame.Stops
	c.haveLast = true
}

// SwitchPreset requests a discrete switch to the given preset. With a ready
// renderer this runs the eased multi-step transition; otherwise the
// destination colors are applied directly with no animation. A switch issued
// while a transition is already running cancels it and restarts from the
// colors currently on screen.
func (c *Controller) SwitchPreset(p Preset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, ok := c.presets[p]
	if !ok {
		c.log.Warn("unknown sky preset ignored", zap.String("preset", string(p)))
		return
	}

	if !c.renderer.IsReady() {
		c.applyPresetLocked(p, target)
		return
	}

	from := c.lastStops
	if !c.haveLast {
		from = c.presets[c.preset].Stops()
	}
	if c.trans != nil {
		// Restart from the current interpolated colors, not the original
		// source, so there is no visible jump.
		from = c.trans.stepStops(c.trans.step)
		c.trans.cancel()
	}

	t := &transition{from: from, to: target, toPreset: p}
	t.handle = c.sched.ScheduleRecurring(func() { c.transitionStep(t) }, TransitionDuration/TransitionSteps)
	c.trans = t
	c.log.Info("sky transition started",
		zap.String("from", string(c.preset)),
		zap.String("to", string(p)),
	)
}

func (c *Controller) transitionStep(t *transition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A replaced transition may still have one step in flight.
	if c.trans != t {
		return
	}

	t.step++
	progress := float64(t.step) / TransitionSteps

	if t.step >= TransitionSteps {
		// Land on the destination's exact colors, not the eased
		// approximation, to avoid residual rounding drift.
		t.cancel()
		c.trans = nil
		c.applyPresetLocked(t.toPreset, t.to)
		c.renderer.SetStarLayerVisible(t.toPreset == PresetNight)
		c.log.Info("sky transition complete", zap.String("preset", string(t.toPreset)))
		return
	}

	stops := t.stepStops(t.step)
	c.renderer.SetSkyGradientStops(stops)
	c.renderer.SetBackgroundColor(stops.Bottom)
	c.lastStops = stops
	c.haveLast = true

	if progress > transitionStarThreshold {
		c.renderer.SetStarLayerVisible(t.toPreset == PresetNight)
	}
}

// applyPresetLocked writes a preset's exact colors and records it as current.
func (c *Controller) applyPresetLocked(p Preset, colors Colors) {
	c.preset = p
	c.renderer.SetSkyGradientStops(colors.Stops())
	c.renderer.SetBackgroundColor(colors.Background)
	c.lastStops = colors.Stops()
	c.haveLast = true
}
