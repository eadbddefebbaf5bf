// Package fake provides a recording Renderer for tests.
package fake

import (
	"sync"

	"github.com/atlaslab/cinemap/internal/render"
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/pkg/math"
)

// ActorWrite records one SetActorPose call.
type ActorWrite struct {
	ActorID  string
	Position math.Vec3
	Rotation math.Vec3
	Scale    float64
}

// EffectWrite records one DispatchEffect call.
type EffectWrite struct {
	EffectID string
	Progress float64
}

// Renderer records every adapter call in order. Ready defaults to true.
type Renderer struct {
	mu sync.Mutex

	NotReady bool

	CameraWrites []scene.CameraPose
	ActorWrites  []ActorWrite
	EffectWrites []EffectWrite

	SkyWrites        []render.GradientStops
	BackgroundWrites []string
	StarWrites       []bool
	SunWrites        []math.Vec3

	// Order records the write categories in call order, for checking the
	// camera -> actors -> effects tick ordering.
	Order []string
}

// New creates a ready fake renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) IsReady() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.NotReady
}

func (r *Renderer) SetReady(ready bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.NotReady = !ready
}

func (r *Renderer) SetCameraPose(pose scene.CameraPose) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CameraWrites = append(r.CameraWrites, pose)
	r.Order = append(r.Order, "camera")
}

func (r *Renderer) SetActorPose(actorID string, position, rotation math.Vec3, scale float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ActorWrites = append(r.ActorWrites, ActorWrite{actorID, position, rotation, scale})
	r.Order = append(r.Order, "actor")
}

func (r *Renderer) SetSkyGradientStops(stops render.GradientStops) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SkyWrites = append(r.SkyWrites, stops)
	r.Order = append(r.Order, "sky")
}

func (r *Renderer) SetBackgroundColor(color string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.BackgroundWrites = append(r.BackgroundWrites, color)
	r.Order = append(r.Order, "background")
}

func (r *Renderer) SetStarLayerVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.StarWrites = append(r.StarWrites, visible)
	r.Order = append(r.Order, "stars")
}

func (r *Renderer) SetSunDirection(dir math.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SunWrites = append(r.SunWrites, dir)
	r.Order = append(r.Order, "sun")
}

func (r *Renderer) DispatchEffect(effect *scene.Effect, progress float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.EffectWrites = append(r.EffectWrites, EffectWrite{effect.ID, progress})
	r.Order = append(r.Order, "effect")
}

// LastSky returns the most recent gradient write, or false if none happened.
func (r *Renderer) LastSky() (render.GradientStops, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.SkyWrites) == 0 {
		return render.GradientStops{}, false
	}
	return r.SkyWrites[len(r.SkyWrites)-1], true
}

// LastStars returns the most recent star visibility write, or false if none
// happened.
func (r *Renderer) LastStars() (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.StarWrites) == 0 {
		return false, false
	}
	return r.StarWrites[len(r.StarWrites)-1], true
}
