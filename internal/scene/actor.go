package scene

import "github.com/atlaslab/cinemap/pkg/math"

// AnimationKind selects which actor property an animation drives.
type AnimationKind string

const (
	AnimMove   AnimationKind = "move"
	AnimRotate AnimationKind = "rotate"
	AnimScale  AnimationKind = "scale"
	AnimCustom AnimationKind = "custom"
)

// Actor is a placed model instance. Position and rotation are mutated by
// animations during playback, or directly by the user outside playback.
type Actor struct {
	ID       string
	Name     string
	ModelRef string // opaque handle into the external model loader

	Position math.Vec3
	Rotation math.Vec3 // euler degrees
	Scale    float64   // uniform

	Animations []*Animation
}

// AnimationKeyframe is one endpoint of a two-point animation. Slot 0 maps to
// the animation start, slot 1 to its end.
type AnimationKeyframe struct {
	Value math.Vec3
}

// Animation drives one actor property from Keyframes[0] to Keyframes[1] over
// [StartTime, StartTime+Duration). Extra stored keyframes beyond the first two
// are ignored; interpolation is strictly two-point.
type Animation struct {
	ID        string
	Kind      AnimationKind
	StartTime float64
	Duration  float64 // > 0
	Keyframes []AnimationKeyframe
}

// ActiveAt reports whether the animation's window covers scene time t. The
// window is half-open: start <= t < start+duration.
func (a *Animation) ActiveAt(t float64) bool {
	return t >= a.StartTime && t < a.StartTime+a.Duration
}

// Progress returns the animation-local progress at scene time t, clamped to
// [0,1].
func (a *Animation) Progress(t float64) float64 {
	p := (t - a.StartTime) / a.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Apply writes the interpolated value for progress p onto the actor property
// this animation drives. Scale animations read the uniform factor from the
// value's X component.
func (a *Animation) Apply(actor *Actor, p float64) {
	if len(a.Keyframes) < 2 {
		return
	}
	v := a.Keyframes[0].Value.Lerp(a.Keyframes[1].Value, p)
	switch a.Kind {
	case AnimRotate:
		actor.Rotation = v
	case AnimScale:
		actor.Scale = v.X
	default: // move and custom both drive position
		actor.Position = v
	}
}
