// Package hotkey provides a global quit shortcut so the operator can stop
// pointer control without the mouse. A gesture app that misbehaves can make
// the cursor unusable, so the escape hatch must be keyboard-only.
package hotkey

import (
	"errors"
	"sync"

	hook "github.com/robotn/gohook"
)

// Listener watches for a global key combination and fires a callback.
type Listener struct {
	keys    []string
	onPress func()
	mu      sync.Mutex
	running bool
}

// NewListener creates a listener for the given key combination, e.g.
// ["ctrl", "shift", "q"].
func NewListener(keys []string, onPress func()) (*Listener, error) {
	if len(keys) == 0 {
		return nil, errors.New("hotkey: no keys given")
	}
	if onPress == nil {
		return nil, errors.New("hotkey: nil callback")
	}
	return &Listener{keys: keys, onPress: onPress}, nil
}

// Start begins listening on a background goroutine. The callback runs on
// the hook's event goroutine, so it should hand off promptly.
func (l *Listener) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}
	l.running = true

	hook.Register(hook.KeyDown, l.keys, func(e hook.Event) {
		l.onPress()
	})

	go func() {
		s := hook.Start()
		<-hook.Process(s)
	}()
}

// Stop ends the global hook.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running {
		return
	}
	l.running = false
	hook.End()
}
