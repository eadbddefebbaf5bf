// Package scene holds the editable data model for a film scene: the camera
// path, placed actors with their animations, and timed effects. One scene is
// current per editing session; playback reads it and actor animations write
// poses back into it.
package scene

import (
	"fmt"
	"sort"

	"github.com/atlaslab/cinemap/pkg/math"
)

// CameraPose is a full camera description at one instant. Longitude/latitude
// and zoom are passed through to the renderer untouched; no projection math
// happens here.
type CameraPose struct {
	// Position
	Lon, Lat float64
	Zoom     float64 // altitude proxy

	// Look-at target
	TargetLon, TargetLat float64
	Pitch                float64

	// Heading in degrees, clockwise from north
	Bearing float64
}

// Direction returns the 2D unit heading derived from the bearing. It is
// recomputed on demand rather than stored; the bearing is authoritative.
func (p CameraPose) Direction() math.Vec2 {
	return math.FromBearing(p.Bearing)
}

// CameraKeyframe anchors a camera pose at a point on the scene timeline.
// Keyframes are captured from live camera state and are not guaranteed to be
// appended in time order, so lookups sort by time.
type CameraKeyframe struct {
	Time float64 // seconds, >= 0
	Pose CameraPose
}

// Scene is one authored film scene.
type Scene struct {
	ID       string
	Name     string
	Duration float64 // seconds, > 0

	CameraPath []CameraKeyframe
	Actors     []*Actor
	Effects    []*Effect

	nextActorID  int
	nextAnimID   int
	nextEffectID int
}

// New creates an empty scene. Duration must be positive.
func New(id, name string, duration float64) (*Scene, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("scene duration must be positive, got %v", duration)
	}
	return &Scene{ID: id, Name: name, Duration: duration}, nil
}

// AddCameraKeyframe captures a camera pose at the given scene time.
func (s *Scene) AddCameraKeyframe(pose CameraPose, at float64) (*CameraKeyframe, error) {
	if at < 0 {
		return nil, fmt.Errorf("keyframe time must be >= 0, got %v", at)
	}
	s.CameraPath = append(s.CameraPath, CameraKeyframe{Time: at, Pose: pose})
	return &s.CameraPath[len(s.CameraPath)-1], nil
}

// SortedCameraPath returns the camera keyframes ordered by time. The stored
// slice is left untouched.
func (s *Scene) SortedCameraPath() []CameraKeyframe {
	path := make([]CameraKeyframe, len(s.CameraPath))
	copy(path, s.CameraPath)
	sort.SliceStable(path, func(i, j int) bool { return path[i].Time < path[j].Time })
	return path
}

// AddActor places an imported model in the scene.
func (s *Scene) AddActor(name, modelRef string, position math.Vec3) *Actor {
	s.nextActorID++
	a := &Actor{
		ID:       fmt.Sprintf("actor-%d", s.nextActorID),
		Name:     name,
		ModelRef: modelRef,
		Position: position,
		Scale:    1.0,
	}
	s.Actors = append(s.Actors, a)
	return a
}

// AddAnimation attaches a two-point animation to an actor.
func (s *Scene) AddAnimation(actor *Actor, kind AnimationKind, start, duration float64, from, to math.Vec3) (*Animation, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("animation duration must be positive, got %v", duration)
	}
	s.nextAnimID++
	anim := &Animation{
		ID:        fmt.Sprintf("anim-%d", s.nextAnimID),
		Kind:      kind,
		StartTime: start,
		Duration:  duration,
		Keyframes: []AnimationKeyframe{{Value: from}, {Value: to}},
	}
	actor.Animations = append(actor.Animations, anim)
	return anim, nil
}

// AddEffect places a timed effect on the scene timeline.
func (s *Scene) AddEffect(name string, params EffectParams, start, duration float64) (*Effect, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("effect duration must be positive, got %v", duration)
	}
	s.nextEffectID++
	e := &Effect{
		ID:        fmt.Sprintf("effect-%d", s.nextEffectID),
		Name:      name,
		Params:    params,
		StartTime: start,
		Duration:  duration,
	}
	s.Effects = append(s.Effects, e)
	return e, nil
}

// ActorByID looks up an actor, returning nil if absent.
func (s *Scene) ActorByID(id string) *Actor {
	for _, a := range s.Actors {
		if a.ID == id {
			return a
		}
	}
	return nil
}
