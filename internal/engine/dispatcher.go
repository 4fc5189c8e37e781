package engine

import "fmt"

// Pointer is the OS pointer-injection boundary the dispatcher relays
// events to. Implementations live in internal/pointer.
type Pointer interface {
	// MoveTo places the cursor at absolute screen coordinates.
	MoveTo(x, y int) error
	// ButtonDown presses the primary button.
	ButtonDown() error
	// ButtonUp releases the primary button.
	ButtonUp() error
}

// Dispatcher relays interaction events to the pointer-injection boundary
// while enforcing ordering guarantees: the button is never pressed twice
// without an intervening release, a DragMove never reaches the pointer
// without a preceding DragStart in the same drag, and duplicate identical
// Move events are suppressed to limit injection overhead.
type Dispatcher struct {
	pointer    Pointer
	buttonDown bool
	dragActive bool
	lastMove   ScreenPoint
	hasMoved   bool

	// OnEvent, if set, observes every event that was actually relayed.
	OnEvent func(Event)
}

// NewDispatcher creates a Dispatcher for the given pointer boundary.
func NewDispatcher(p Pointer) *Dispatcher {
	return &Dispatcher{pointer: p}
}

// Dispatch relays one event. Events that would violate the ordering
// guarantees are dropped silently; sensor noise is absorbed here rather
// than propagated as errors.
func (d *Dispatcher) Dispatch(ev Event) error {
	switch ev.Type {
	case EventMove:
		if d.hasMoved && ev.Position == d.lastMove {
			return nil
		}
		if err := d.pointer.MoveTo(ev.Position.X, ev.Position.Y); err != nil {
			return fmt.Errorf("move cursor: %w", err)
		}
		d.lastMove = ev.Position
		d.hasMoved = true

	case EventClickDown:
		if d.buttonDown {
			return nil
		}
		if err := d.pointer.ButtonDown(); err != nil {
			return fmt.Errorf("press button: %w", err)
		}
		d.buttonDown = true

	case EventClickUp:
		if !d.buttonDown {
			return nil
		}
		if err := d.pointer.ButtonUp(); err != nil {
			return fmt.Errorf("release button: %w", err)
		}
		d.buttonDown = false

	case EventDragStart:
		// The button is already held from the ClickDown that opened the
		// pinch; the drag start only arms DragMove relaying.
		if !d.buttonDown {
			if err := d.pointer.ButtonDown(); err != nil {
				return fmt.Errorf("press button: %w", err)
			}
			d.buttonDown = true
		}
		d.dragActive = true

	case EventDragMove:
		if !d.dragActive {
			return nil
		}
		if d.hasMoved && ev.Position == d.lastMove {
			return nil
		}
		if err := d.pointer.MoveTo(ev.Position.X, ev.Position.Y); err != nil {
			return fmt.Errorf("drag cursor: %w", err)
		}
		d.lastMove = ev.Position
		d.hasMoved = true

	case EventDragEnd:
		if !d.dragActive {
			return nil
		}
		d.dragActive = false
		if d.buttonDown {
			if err := d.pointer.ButtonUp(); err != nil {
				return fmt.Errorf("release button: %w", err)
			}
			d.buttonDown = false
		}
	}

	if d.OnEvent != nil {
		d.OnEvent(ev)
	}
	return nil
}

// ButtonHeld reports whether the dispatcher currently holds the button
// down. Used on shutdown to confirm the pointer was left released.
func (d *Dispatcher) ButtonHeld() bool {
	return d.buttonDown
}
