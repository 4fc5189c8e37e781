// Package server provides the HTTP control surface for mudra: health,
// runtime tuning, session history, a live event feed, and a camera preview.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Tuner exposes the running engine's tuning for inspection and update.
// The application implements it; updates are validated there so a bad
// request can never degrade the interpretation invariants.
type Tuner interface {
	Tuning() engine.Tuning
	ApplyTuning(engine.Tuning) error
}

// Config holds the server configuration. Nil fields disable the
// corresponding endpoints.
type Config struct {
	Store     *store.Store
	Camera    capture.Camera
	Tuner     Tuner
	StaticDir string
}

// Server is the HTTP handler for the mudra control API.
type Server struct {
	config Config
	mux    *http.ServeMux
	events *EventsHandler
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		events: NewEventsHandler(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// Events returns the live event feed so the application can broadcast
// dispatched pointer events to connected clients.
func (s *Server) Events() *EventsHandler {
	return s.events
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.Handle("/api/events", s.events)

	if s.config.Tuner != nil {
		s.mux.HandleFunc("/api/tuning", s.handleTuning)
	}

	if s.config.Store != nil {
		sessionsHandler := api.NewSessionsHandler(s.config.Store)
		s.mux.Handle("/api/sessions", sessionsHandler)
		s.mux.Handle("/api/sessions/", sessionsHandler)
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.StaticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(s.config.StaticDir)))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	writeJSON(w, http.StatusOK, response)
}

// tuningPayload is the wire form of engine.Tuning. The drag hold travels
// as integer milliseconds rather than a Go duration.
type tuningPayload struct {
	Alpha      float64 `json:"alpha"`
	PinchClose float64 `json:"pinch_close"`
	PinchOpen  float64 `json:"pinch_open"`
	DragHoldMs int     `json:"drag_hold_ms"`
	DeadZone   float64 `json:"dead_zone"`
}

func payloadFromTuning(t engine.Tuning) tuningPayload {
	return tuningPayload{
		Alpha:      t.Alpha,
		PinchClose: t.PinchClose,
		PinchOpen:  t.PinchOpen,
		DragHoldMs: int(t.DragHold / time.Millisecond),
		DeadZone:   t.DeadZone,
	}
}

func (p tuningPayload) tuning() engine.Tuning {
	return engine.Tuning{
		Alpha:      p.Alpha,
		PinchClose: p.PinchClose,
		PinchOpen:  p.PinchOpen,
		DragHold:   time.Duration(p.DragHoldMs) * time.Millisecond,
		DeadZone:   p.DeadZone,
	}
}

func (s *Server) handleTuning(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, payloadFromTuning(s.config.Tuner.Tuning()))

	case http.MethodPut:
		var p tuningPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if err := s.config.Tuner.ApplyTuning(p.tuning()); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, http.StatusOK, payloadFromTuning(s.config.Tuner.Tuning()))

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
