// Package app wires the mudra pipeline together: camera capture, hand
// tracking, gesture interpretation, and pointer injection, with optional
// session persistence and a live event feed.
package app

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tracker"
)

// idleTimeout is how long without motion before the camera drops back to
// the idle frame rate.
const idleTimeout = 2 * time.Second

// Config holds the application dependencies. Camera, Tracker, and Pointer
// may be provided for tests; nil fields get production implementations.
type Config struct {
	Settings *config.Config
	Store    *store.Store

	Camera  capture.Camera
	Tracker tracker.Tracker
	Pointer engine.Pointer

	// ScreenWidth and ScreenHeight are the target display resolution.
	// The caller resolves auto-detection before constructing the App.
	ScreenWidth  int
	ScreenHeight int
}

// App orchestrates the capture-track-interpret-inject pipeline.
type App struct {
	cfg    *config.Config
	store  *store.Store
	camera capture.Camera
	motion *capture.MotionDetector
	track  tracker.Tracker

	// mu serializes engine access: the frame loop mutates engine state and
	// the HTTP tuning handler updates parameters between frames.
	mu         sync.Mutex
	engine     *engine.Engine
	dispatcher *engine.Dispatcher
	tuning     engine.Tuning

	// OnEvent, if set, observes every dispatched event. The server's
	// WebSocket feed hooks in here.
	OnEvent func(engine.Event)

	enabled   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	runMu     sync.Mutex
	sessionID string
	frames    int
	events    int
}

// movesOnlyPointer passes cursor moves through but swallows button events.
// Used when clicks are disabled in configuration.
type movesOnlyPointer struct {
	p engine.Pointer
}

func (m movesOnlyPointer) MoveTo(x, y int) error { return m.p.MoveTo(x, y) }
func (m movesOnlyPointer) ButtonDown() error     { return nil }
func (m movesOnlyPointer) ButtonUp() error       { return nil }

// New creates an App from the given dependencies. Tuning overrides
// persisted in the store are applied on top of the file configuration.
func New(c Config) *App {
	settings := c.Settings
	if settings == nil {
		settings = config.Default()
	}

	camera := c.Camera
	if camera == nil {
		camera = capture.NewCamera(settings.CameraID)
	}

	trk := c.Tracker
	if trk == nil {
		if mp, err := tracker.NewMediaPipeTracker(tracker.DefaultConfig()); err == nil {
			trk = mp
			log.Println("Using MediaPipe hand tracking")
		} else {
			log.Printf("MediaPipe not available (%v), using mock tracker", err)
			trk = tracker.NewMockTracker()
		}
	}

	ptr := c.Pointer
	if ptr == nil {
		ptr = pointer.NewSystemPointer()
	}
	if !settings.EnableClicks {
		ptr = movesOnlyPointer{p: ptr}
	}

	tuning := settings.Tuning()

	a := &App{
		cfg:        settings,
		store:      c.Store,
		camera:     camera,
		motion:     capture.NewMotionDetector(settings.MotionThreshold),
		track:      trk,
		engine:     engine.New(tuning, settings.LossFrames, c.ScreenWidth, c.ScreenHeight),
		dispatcher: engine.NewDispatcher(ptr),
		tuning:     tuning,
		enabled:    true,
	}

	a.dispatcher.OnEvent = a.observeEvent

	if c.Store != nil {
		a.applyStoredTuning()
	}

	return a
}

// applyStoredTuning layers persisted tuning overrides over the current
// tuning. Unparseable values are logged and skipped.
func (a *App) applyStoredTuning() {
	stored, err := a.store.Settings().All()
	if err != nil {
		log.Printf("Failed to load stored tuning: %v", err)
		return
	}
	if len(stored) == 0 {
		return
	}

	t := a.tuning
	for key, raw := range stored {
		switch key {
		case "alpha", "pinch_close", "pinch_open", "dead_zone":
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				log.Printf("Ignoring stored %s=%q: %v", key, raw, err)
				continue
			}
			switch key {
			case "alpha":
				t.Alpha = v
			case "pinch_close":
				t.PinchClose = v
			case "pinch_open":
				t.PinchOpen = v
			case "dead_zone":
				t.DeadZone = v
			}
		case "drag_hold_ms":
			ms, err := strconv.Atoi(raw)
			if err != nil {
				log.Printf("Ignoring stored drag_hold_ms=%q: %v", raw, err)
				continue
			}
			t.DragHold = time.Duration(ms) * time.Millisecond
		}
	}

	if err := validateTuning(t); err != nil {
		log.Printf("Stored tuning rejected: %v", err)
		return
	}

	a.mu.Lock()
	a.tuning = t
	a.engine.SetTuning(t)
	a.mu.Unlock()
}

func validateTuning(t engine.Tuning) error {
	if t.Alpha <= 0 || t.Alpha > 1 {
		return fmt.Errorf("alpha %g outside (0, 1]", t.Alpha)
	}
	if t.PinchClose <= 0 {
		return fmt.Errorf("pinch_close %g must be positive", t.PinchClose)
	}
	if t.PinchOpen <= t.PinchClose {
		return fmt.Errorf("pinch_open %g must exceed pinch_close %g", t.PinchOpen, t.PinchClose)
	}
	if t.DragHold <= 0 {
		return fmt.Errorf("drag hold %v must be positive", t.DragHold)
	}
	if t.DeadZone < 0 || t.DeadZone >= 0.5 {
		return fmt.Errorf("dead_zone %g outside [0, 0.5)", t.DeadZone)
	}
	return nil
}

// Tuning returns the active interpretation parameters.
func (a *App) Tuning() engine.Tuning {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tuning
}

// ApplyTuning validates and applies new parameters between frames, and
// persists them so they survive a restart.
func (a *App) ApplyTuning(t engine.Tuning) error {
	if err := validateTuning(t); err != nil {
		return err
	}

	a.mu.Lock()
	a.tuning = t
	a.engine.SetTuning(t)
	a.mu.Unlock()

	if a.store != nil {
		repo := a.store.Settings()
		pairs := map[string]string{
			"alpha":        strconv.FormatFloat(t.Alpha, 'g', -1, 64),
			"pinch_close":  strconv.FormatFloat(t.PinchClose, 'g', -1, 64),
			"pinch_open":   strconv.FormatFloat(t.PinchOpen, 'g', -1, 64),
			"drag_hold_ms": strconv.Itoa(int(t.DragHold / time.Millisecond)),
			"dead_zone":    strconv.FormatFloat(t.DeadZone, 'g', -1, 64),
		}
		for k, v := range pairs {
			if err := repo.Set(k, v); err != nil {
				log.Printf("Failed to persist tuning %s: %v", k, err)
			}
		}
	}

	return nil
}

// SetEnabled enables or disables pointer control. Disabling mid-gesture
// releases the button through the engine's reset path so nothing is left
// held.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.enabled == enabled {
		return
	}
	a.enabled = enabled

	if !enabled {
		a.dispatchLocked(a.engine.Reset(time.Now()))
	}
}

// IsEnabled reports whether pointer control is active.
func (a *App) IsEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// State returns the current gesture state as a string for display.
func (a *App) State() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return string(a.engine.State())
}

// observeEvent runs for every event the dispatcher actually relayed.
func (a *App) observeEvent(ev engine.Event) {
	a.events++

	if a.store != nil && a.sessionID != "" {
		if err := a.store.Events().Record(a.sessionID, ev); err != nil {
			log.Printf("Failed to record event: %v", err)
		}
	}

	if a.OnEvent != nil {
		a.OnEvent(ev)
	}
}

// dispatchLocked relays events to the pointer. Caller holds a.mu.
func (a *App) dispatchLocked(events []engine.Event) {
	for _, ev := range events {
		if err := a.dispatcher.Dispatch(ev); err != nil {
			log.Printf("Dispatch %s failed: %v", ev.Type, err)
		}
	}
}

// Start opens the camera, begins a session, and launches the frame loop.
func (a *App) Start() error {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	a.camera.SetFPS(a.cfg.IdleFPS)

	if a.store != nil {
		a.sessionID = uuid.New().String()
		if err := a.store.Sessions().Create(&store.Session{ID: a.sessionID}); err != nil {
			log.Printf("Failed to create session: %v", err)
			a.sessionID = ""
		}
	}

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline(a.stopCh, a.doneCh)

	log.Println("Pipeline started")
	return nil
}

// Stop halts the frame loop, releases any held button, ends the session,
// and closes the capture resources.
func (a *App) Stop() {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	if a.stopCh == nil {
		return
	}
	close(a.stopCh)
	<-a.doneCh
	a.stopCh = nil
	a.doneCh = nil

	// Abort any in-progress gesture so the OS button is not left held.
	a.mu.Lock()
	a.dispatchLocked(a.engine.Reset(time.Now()))
	a.mu.Unlock()

	if a.store != nil && a.sessionID != "" {
		if err := a.store.Sessions().End(a.sessionID, time.Now(), a.frames, a.events); err != nil {
			log.Printf("Failed to end session: %v", err)
		}
		a.sessionID = ""
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()
	if a.track != nil {
		if err := a.track.Close(); err != nil {
			log.Printf("Error closing tracker: %v", err)
		}
	}

	log.Println("Pipeline stopped")
}

// Camera returns the camera instance, for the preview stream.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// ButtonHeld reports whether the dispatcher currently holds the button.
func (a *App) ButtonHeld() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatcher.ButtonHeld()
}
