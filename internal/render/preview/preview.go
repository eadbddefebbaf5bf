// Package preview implements the Renderer adapter as a websocket broadcast:
// every camera, actor, sky, and effect write is forwarded as a JSON event to
// connected clients. It stands in for the real map renderer so scenes and the
// day-night cycle can be watched in a browser.
package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/atlaslab/cinemap/internal/render"
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/pkg/math"
)

// throttle caps per-channel event rate toward the UI, matching roughly 20
// frames per second.
const throttle = 50 * time.Millisecond

// Event is one renderer write serialized for clients.
type Event struct {
	Type string `json:"type"`

	Camera *cameraEvent `json:"camera,omitempty"`
	Actor  *actorEvent  `json:"actor,omitempty"`
	Sky    *skyEvent    `json:"sky,omitempty"`
	Effect *effectEvent `json:"effect,omitempty"`

	Background string     `json:"background,omitempty"`
	Stars      *bool      `json:"stars,omitempty"`
	Sun        *math.Vec3 `json:"sun,omitempty"`
}

type cameraEvent struct {
	Lon       float64 `json:"lon"`
	Lat       float64 `json:"lat"`
	Zoom      float64 `json:"zoom"`
	TargetLon float64 `json:"targetLon"`
	TargetLat float64 `json:"targetLat"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

type actorEvent struct {
	ID       string    `json:"id"`
	Position math.Vec3 `json:"position"`
	Rotation math.Vec3 `json:"rotation"`
	Scale    float64   `json:"scale"`
}

type skyEvent struct {
	Top     string `json:"top"`
	Middle1 string `json:"middle1"`
	Middle2 string `json:"middle2"`
	Bottom  string `json:"bottom"`
}

type effectEvent struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     scene.EffectKind `json:"kind"`
	Progress float64          `json:"progress"`
}

// Server is a websocket-broadcasting Renderer.
type Server struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	ready    bool
	lastSent map[string]time.Time
}

// NewServer creates a preview renderer. It reports not-ready until Start.
func NewServer(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[*websocket.Conn]struct{}),
		lastSent: make(map[string]time.Time),
	}
}

// Start serves the websocket endpoint on addr until the process exits. It
// returns once the listener is accepting, marking the renderer ready.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)

	srv := &http.Server{Addr: addr, Handler: mux}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	// Give the listener a moment to fail fast on a bad address.
	select {
	case err := <-errc:
		return err
	case <-time.After(100 * time.Millisecond):
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.log.Info("preview server listening", zap.String("addr", addr))
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	s.log.Info("preview client connected", zap.Int("clients", n))

	// Reader loop only to detect disconnects; clients do not send commands.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast sends an event to every client, dropping clients whose writes
// fail. Channel keying lets high-rate channels be throttled independently.
func (s *Server) broadcast(channel string, ev Event, throttled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if throttled {
		now := time.Now()
		if last, ok := s.lastSent[channel]; ok && now.Sub(last) < throttle {
			return
		}
		s.lastSent[channel] = now
	}

	if len(s.clients) == 0 {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("marshaling preview event", zap.Error(err))
		return
	}
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

// IsReady reports whether the server has started.
func (s *Server) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *Server) SetCameraPose(pose scene.CameraPose) {
	s.broadcast("camera", Event{Type: "camera", Camera: &cameraEvent{
		Lon: pose.Lon, Lat: pose.Lat, Zoom: pose.Zoom,
		TargetLon: pose.TargetLon, TargetLat: pose.TargetLat,
		Pitch: pose.Pitch, Bearing: pose.Bearing,
	}}, true)
}

func (s *Server) SetActorPose(actorID string, position, rotation math.Vec3, scale float64) {
	s.broadcast("actor:"+actorID, Event{Type: "actor", Actor: &actorEvent{
		ID: actorID, Position: position, Rotation: rotation, Scale: scale,
	}}, true)
}

func (s *Server) SetSkyGradientStops(stops render.GradientStops) {
	s.broadcast("sky", Event{Type: "sky", Sky: &skyEvent{
		Top: stops.Top, Middle1: stops.Middle1, Middle2: stops.Middle2, Bottom: stops.Bottom,
	}}, true)
}

func (s *Server) SetBackgroundColor(color string) {
	s.broadcast("background", Event{Type: "background", Background: color}, true)
}

func (s *Server) SetStarLayerVisible(visible bool) {
	// Star flips are discrete; never throttle them away.
	s.broadcast("stars", Event{Type: "stars", Stars: &visible}, false)
}

func (s *Server) SetSunDirection(dir math.Vec3) {
	s.broadcast("sun", Event{Type: "sun", Sun: &dir}, true)
}

func (s *Server) DispatchEffect(effect *scene.Effect, progress float64) {
	s.broadcast("effect:"+effect.ID, Event{Type: "effect", Effect: &effectEvent{
		ID: effect.ID, Name: effect.Name, Kind: effect.Kind(), Progress: progress,
	}}, true)
}
