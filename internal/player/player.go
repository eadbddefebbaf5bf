// Package player drives scene playback: it advances a virtual clock over the
// scene duration and, per frame, resolves the camera pose, applies active
// actor animations, and dispatches active effects to the renderer.
package player

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/atlaslab/cinemap/internal/clock"
	"github.com/atlaslab/cinemap/internal/render"
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/internal/timeline"
)

// State enumerates the player state machine. There is no pause state; stopping
// mid-playback is a cancellation.
type State string

const (
	Idle    State = "idle"
	Playing State = "playing"
)

// ErrAlreadyPlaying is returned by Play while playback is in progress.
var ErrAlreadyPlaying = errors.New("player: already playing")

// tickContext carries the per-playback state each frame callback reads and
// updates in place. It is created once per Play call, never per tick, so no
// tick can observe stale captured values.
type tickContext struct {
	scn        *scene.Scene
	cameraPath []scene.CameraKeyframe // time-sorted once at Play
	startRef   int64                  // scheduler ms at Play
}

// Player plays one scene at a time against a renderer.
type Player struct {
	mu sync.Mutex

	renderer render.Renderer
	sched    clock.Scheduler
	log      *zap.Logger

	state  State
	ctx    *tickContext
	handle clock.Handle
}

// New creates an idle player.
func New(renderer render.Renderer, sched clock.Scheduler, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{renderer: renderer, sched: sched, log: log, state: Idle}
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Play starts playback of the scene. Valid only from Idle.
func (p *Player) Play(scn *scene.Scene) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Idle {
		return ErrAlreadyPlaying
	}

	p.ctx = &tickContext{
		scn:        scn,
		cameraPath: scn.SortedCameraPath(),
		startRef:   p.sched.Now(),
	}
	p.state = Playing
	p.handle = p.sched.ScheduleFrame(p.tick)
	p.log.Info("playback started",
		zap.String("scene", scn.ID),
		zap.Float64("duration", scn.Duration),
	)
	return nil
}

// Stop cancels playback. The last fully applied camera and actor state stays
// in place.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked("playback stopped")
}

func (p *Player) stopLocked(msg string) {
	if p.state == Idle {
		return
	}
	if p.handle != nil {
		p.handle.Cancel()
		p.handle = nil
	}
	p.state = Idle
	p.ctx = nil
	p.log.Info(msg)
}

// tick runs one playback frame and reschedules itself while progress < 1.
func (p *Player) tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctx == nil {
		return
	}
	ctx := p.ctx

	elapsed := float64(p.sched.Now() - ctx.startRef)
	progress := elapsed / (ctx.scn.Duration * 1000)
	if progress > 1 {
		progress = 1
	}
	sceneTime := progress * ctx.scn.Duration

	// Fixed order per tick: camera, then actors, then effects.
	p.applyCamera(ctx, progress)
	p.applyActors(ctx, sceneTime)
	p.applyEffects(ctx, sceneTime)

	if progress >= 1 {
		p.stopLocked("playback finished")
		return
	}
	p.handle = p.sched.ScheduleFrame(p.tick)
}

// applyCamera resolves the pose by mapping global progress onto the keyframe
// time range and pushes it as a zero-duration move. Paths with fewer than two
// keyframes leave the camera untouched; that is expected, not an error.
func (p *Player) applyCamera(ctx *tickContext, progress float64) {
	path := ctx.cameraPath
	if len(path) < 2 {
		return
	}
	if !p.renderer.IsReady() {
		return
	}
	first, last := path[0].Time, path[len(path)-1].Time
	t := first + progress*(last-first)
	pose := timeline.CameraPoseAt(path, t)
	p.renderer.SetCameraPose(pose)
}

// applyActors writes the pose of every active animation back into the scene
// and forwards it to the renderer. Mutating actor state is an authored side
// effect of playback: re-entering playback sees the last written pose.
func (p *Player) applyActors(ctx *tickContext, sceneTime float64) {
	for _, actor := range ctx.scn.Actors {
		touched := false
		for _, anim := range actor.Animations {
			if !anim.ActiveAt(sceneTime) {
				continue
			}
			anim.Apply(actor, anim.Progress(sceneTime))
			touched = true
		}
		if touched && p.renderer.IsReady() {
			p.renderer.SetActorPose(actor.ID, actor.Position, actor.Rotation, actor.Scale)
		}
	}
}

func (p *Player) applyEffects(ctx *tickContext, sceneTime float64) {
	if !p.renderer.IsReady() {
		return
	}
	for _, effect := range ctx.scn.Effects {
		if !effect.ActiveAt(sceneTime) {
			continue
		}
		p.renderer.DispatchEffect(effect, effect.Progress(sceneTime))
	}
}
