// Package session ties the pieces of the editor together: the current scene,
// the playback engine, and the sky subsystem. The UI layer talks to a Session
// and never to the engines directly.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atlaslab/cinemap/internal/clock"
	"github.com/atlaslab/cinemap/internal/player"
	"github.com/atlaslab/cinemap/internal/render"
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/internal/sky"
	"github.com/atlaslab/cinemap/pkg/math"
)

// ErrNoScene is returned by operations that need a current scene when none
// has been created.
var ErrNoScene = errors.New("session: no current scene")

// Session is one editing session over one map view. It owns exactly one
// current scene at a time and the per-map sky state.
type Session struct {
	mu sync.Mutex

	renderer render.Renderer
	sched    clock.Scheduler
	log      *zap.Logger

	current *scene.Scene
	player  *player.Player
	sky     *sky.Controller

	nextSceneID int
}

// New creates a session. presets may be nil for the compiled-in defaults.
func New(renderer render.Renderer, sched clock.Scheduler, presets sky.PresetTable, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		renderer: renderer,
		sched:    sched,
		log:      log,
		player:   player.New(renderer, sched, log),
		sky:      sky.NewController(renderer, sched, presets, log),
	}
}

// NewScene replaces the current scene with a fresh one.
func (s *Session) NewScene(name string, duration float64) (*scene.Scene, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSceneID++
	scn, err := scene.New(fmt.Sprintf("scene-%d", s.nextSceneID), name, duration)
	if err != nil {
		return nil, err
	}
	s.current = scn
	s.log.Info("scene created", zap.String("id", scn.ID), zap.String("name", name))
	return scn, nil
}

// Scene returns the current scene, or nil.
func (s *Session) Scene() *scene.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// AddCameraKeyframe captures the given camera pose at a scene time.
func (s *Session) AddCameraKeyframe(pose scene.CameraPose, at float64) (*scene.CameraKeyframe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoScene
	}
	return s.current.AddCameraKeyframe(pose, at)
}

// AddActor imports a model into the current scene.
func (s *Session) AddActor(name, modelRef string, position math.Vec3) (*scene.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoScene
	}
	return s.current.AddActor(name, modelRef, position), nil
}

// AddAnimation attaches a two-point animation to an actor in the current scene.
func (s *Session) AddAnimation(actorID string, kind scene.AnimationKind, start, duration float64, from, to math.Vec3) (*scene.Animation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoScene
	}
	actor := s.current.ActorByID(actorID)
	if actor == nil {
		return nil, fmt.Errorf("session: no actor %q in scene %s", actorID, s.current.ID)
	}
	return s.current.AddAnimation(actor, kind, start, duration, from, to)
}

// AddEffect places a timed effect in the current scene.
func (s *Session) AddEffect(name string, params scene.EffectParams, start, duration float64) (*scene.Effect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoScene
	}
	return s.current.AddEffect(name, params, start, duration)
}

// Play starts playback of the current scene.
func (s *Session) Play() error {
	s.mu.Lock()
	scn := s.current
	s.mu.Unlock()
	if scn == nil {
		return ErrNoScene
	}
	return s.player.Play(scn)
}

// StopPlayback cancels playback, leaving the last applied state in place.
func (s *Session) StopPlayback() {
	s.player.Stop()
}

// PlaybackState reports the player state.
func (s *Session) PlaybackState() player.State {
	return s.player.State()
}

// SetSkyTickInterval adjusts the cycle tick spacing for the next cycle start.
func (s *Session) SetSkyTickInterval(d time.Duration) {
	s.sky.SetTickInterval(d)
}

// SetSkyPattern selects the day-night blend pattern.
func (s *Session) SetSkyPattern(p sky.Pattern) {
	s.sky.SetPattern(p)
}

// SetSkyCyclingEnabled starts or stops the continuous day-night cycle.
func (s *Session) SetSkyCyclingEnabled(on bool) {
	s.sky.SetCyclingEnabled(on)
}

// SwitchSkyPreset runs a discrete eased switch to the named preset.
func (s *Session) SwitchSkyPreset(p sky.Preset) {
	s.sky.SwitchPreset(p)
}

// SkyState returns a snapshot of the sky subsystem.
func (s *Session) SkyState() sky.State {
	return s.sky.State()
}

// Close stops every driver the session owns.
func (s *Session) Close() {
	s.player.Stop()
	s.sky.SetCyclingEnabled(false)
}
