// Package render defines the adapter boundary to the out-of-scope map/3D
// layer. The animation and sky engines only ever talk to this interface; the
// concrete map renderer, the websocket preview, and the test fake all sit
// behind it.
package render

import (
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/pkg/math"
)

// GradientStops are the four sky colors at the fixed radial stop positions,
// top to bottom.
type GradientStops struct {
	Top     string
	Middle1 string
	Middle2 string
	Bottom  string
}

// Renderer is the adapter consumed by playback and the sky subsystem. Writes
// attempted while the renderer is not ready are skipped by the callers, not
// errors.
type Renderer interface {
	IsReady() bool

	// Camera. A pose push is a zero-duration move; easing is owned by the
	// caller, never by the renderer.
	SetCameraPose(pose scene.CameraPose)

	// Actors. Implementations no-op for actors that are not loaded yet.
	SetActorPose(actorID string, position, rotation math.Vec3, scale float64)

	// Sky and background paint.
	SetSkyGradientStops(stops GradientStops)
	SetBackgroundColor(color string)
	SetStarLayerVisible(visible bool)
	SetSunDirection(dir math.Vec3)

	// Effects. The adapter owns per-kind rendering; progress is in [0,1].
	DispatchEffect(effect *scene.Effect, progress float64)
}
