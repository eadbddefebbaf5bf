// Package main is the entry point for the Cinemap scene editor service.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/atlaslab/cinemap/internal/clock"
	"github.com/atlaslab/cinemap/internal/config"
	"github.com/atlaslab/cinemap/internal/logger"
	"github.com/atlaslab/cinemap/internal/render/preview"
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/internal/session"
	"github.com/atlaslab/cinemap/internal/sky"
	"github.com/atlaslab/cinemap/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Cinemap Scene Editor ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Optional sky preset overrides
	var presets sky.PresetTable
	if cfg.Sky.PresetsFile != "" {
		presets, err = sky.LoadPresets(cfg.Sky.PresetsFile)
		if err != nil {
			logger.Error("failed to load sky presets", zap.Error(err))
			os.Exit(1)
		}
	}

	// The preview server is the renderer: every camera, actor, sky, and
	// effect write is broadcast to connected websocket clients.
	renderer := preview.NewServer(log)
	if cfg.Preview.Enabled {
		if err := renderer.Start(cfg.Preview.Addr); err != nil {
			logger.Error("failed to start preview server", zap.Error(err))
			os.Exit(1)
		}
	} else {
		logger.Warn("preview disabled, renderer writes will be skipped until started")
	}

	sched := clock.NewSystemWithFrameInterval(cfg.Playback.FrameInterval)
	sess := session.New(renderer, sched, presets, log)
	defer sess.Close()

	sess.SetSkyTickInterval(cfg.Sky.TickInterval)
	sess.SetSkyPattern(sky.Pattern(cfg.Sky.Pattern))
	if p := sky.Preset(cfg.Sky.Preset); p != sky.PresetBlue {
		sess.SwitchSkyPreset(p)
	}
	if cfg.Sky.CycleOnStart {
		sess.SetSkyCyclingEnabled(true)
	}

	// Author and play a demo flyover so a freshly started editor has
	// something to show in the preview.
	if err := buildDemoScene(sess); err != nil {
		logger.Error("failed to build demo scene", zap.Error(err))
		os.Exit(1)
	}
	if err := sess.Play(); err != nil {
		logger.Error("failed to start playback", zap.Error(err))
		os.Exit(1)
	}

	// Wait for interrupt
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("editor closed normally")
}

// buildDemoScene authors a 12 second flyover: a three-keyframe camera path,
// one actor walking across the view, and a particle burst near the end.
func buildDemoScene(sess *session.Session) error {
	if _, err := sess.NewScene("demo flyover", 12); err != nil {
		return err
	}

	poses := []struct {
		at   float64
		pose scene.CameraPose
	}{
		{0, scene.CameraPose{Lon: 13.3777, Lat: 52.5163, Zoom: 14, Pitch: 45, Bearing: 0}},
		{6, scene.CameraPose{Lon: 13.3904, Lat: 52.5200, Zoom: 16, Pitch: 60, Bearing: 90}},
		{12, scene.CameraPose{Lon: 13.4050, Lat: 52.5220, Zoom: 15, Pitch: 50, Bearing: 180}},
	}
	for _, p := range poses {
		if _, err := sess.AddCameraKeyframe(p.pose, p.at); err != nil {
			return err
		}
	}

	actor, err := sess.AddActor("walker", "models/pedestrian.glb", math.Vec3{X: 0, Y: 0, Z: 0})
	if err != nil {
		return err
	}
	if _, err := sess.AddAnimation(actor.ID, scene.AnimMove, 2, 8,
		math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 40, Y: 0, Z: 10}); err != nil {
		return err
	}

	if _, err := sess.AddEffect("confetti", scene.ParticleParams{
		Rate:  120,
		Size:  0.4,
		Color: "#ffc56e",
	}, 9, 2); err != nil {
		return err
	}
	return nil
}
