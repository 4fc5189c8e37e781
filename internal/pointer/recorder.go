package pointer

import (
	"fmt"
	"sync"
)

// Recorder is a test implementation of the pointer boundary that records
// every injected call instead of touching the OS cursor.
type Recorder struct {
	mu    sync.Mutex
	calls []string
	x, y  int
	down  bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// MoveTo records an absolute cursor move.
func (r *Recorder) MoveTo(x, y int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.x, r.y = x, y
	r.calls = append(r.calls, fmt.Sprintf("move(%d,%d)", x, y))
	return nil
}

// ButtonDown records a primary button press.
func (r *Recorder) ButtonDown() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.down = true
	r.calls = append(r.calls, "down")
	return nil
}

// ButtonUp records a primary button release.
func (r *Recorder) ButtonUp() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.down = false
	r.calls = append(r.calls, "up")
	return nil
}

// Calls returns a copy of the recorded call sequence.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Position returns the last recorded cursor position.
func (r *Recorder) Position() (x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.x, r.y
}

// ButtonHeld reports whether the button was left pressed.
func (r *Recorder) ButtonHeld() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.down
}
