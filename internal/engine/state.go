package engine

import "time"

// GestureState is the single authoritative cross-frame decision state.
type GestureState string

const (
	// StateIdle means no hand is being tracked.
	StateIdle GestureState = "idle"
	// StateMoving means a hand is tracked with the pinch open; the cursor
	// follows the index tip.
	StateMoving GestureState = "moving"
	// StatePinchPending means a pinch has started but has not yet been
	// disambiguated into a click or a drag.
	StatePinchPending GestureState = "pinch_pending"
	// StateDragging means a sustained pinch is dragging with the button held.
	StateDragging GestureState = "dragging"
)

// StateMachine arbitrates between move, click, and drag. Click and drag
// share the same physical trigger; the only branch point is how long the
// pinch is held. A pinch released before the drag-hold duration completes
// as a click, a pinch held past it promotes to a drag.
//
// Transitions happen once per processed frame and only here; nothing else
// mutates the gesture state.
type StateMachine struct {
	state        GestureState
	dragHold     time.Duration
	pendingSince time.Time
}

// NewStateMachine creates a StateMachine in the Idle state with the given
// drag-hold duration.
func NewStateMachine(dragHold time.Duration) *StateMachine {
	return &StateMachine{
		state:    StateIdle,
		dragHold: dragHold,
	}
}

// State returns the current gesture state.
func (m *StateMachine) State() GestureState {
	return m.state
}

// SetDragHold updates the drag-hold duration. Non-positive values are
// ignored.
func (m *StateMachine) SetDragHold(d time.Duration) {
	if d <= 0 {
		return
	}
	m.dragHold = d
}

// Step evaluates one frame with a tracked hand and returns the events the
// frame produces. Positions are filled in by the caller; Step decides only
// which events fire and when.
//
// A frame that promotes a pending pinch to a drag produces two events: the
// DragStart, stamped at the instant the hold threshold elapsed (which may
// predate the frame when frames arrive slower than the threshold), and the
// frame's DragMove.
func (m *StateMachine) Step(pinch PinchState, now time.Time) []Event {
	switch m.state {
	case StateIdle, StateMoving:
		if pinch == PinchClosed {
			m.state = StatePinchPending
			m.pendingSince = now
			return []Event{{Type: EventClickDown, At: now}}
		}
		m.state = StateMoving
		return []Event{{Type: EventMove, At: now}}

	case StatePinchPending:
		if pinch == PinchOpen {
			// Released before the hold threshold: a deliberate click.
			m.state = StateMoving
			return []Event{{Type: EventClickUp, At: now}}
		}
		if now.Sub(m.pendingSince) >= m.dragHold {
			m.state = StateDragging
			return []Event{
				{Type: EventDragStart, At: m.pendingSince.Add(m.dragHold)},
				{Type: EventDragMove, At: now},
			}
		}
		// Still pending; no event until the hold resolves.
		return nil

	case StateDragging:
		if pinch == PinchOpen {
			m.state = StateMoving
			return []Event{{Type: EventDragEnd, At: now}}
		}
		return []Event{{Type: EventDragMove, At: now}}
	}

	return nil
}

// NoHand records a frame without a tracked hand while not mid-gesture.
// Mid-gesture tracking loss goes through ForceIdle instead so the
// terminating event is emitted.
func (m *StateMachine) NoHand() {
	if m.state == StateMoving {
		m.state = StateIdle
	}
}

// ForceIdle aborts any in-progress gesture and returns the terminating
// event needed to leave the downstream pointer in a released state:
// ClickUp for a pending pinch, DragEnd for an active drag. Used on
// sustained tracking loss and on shutdown.
func (m *StateMachine) ForceIdle(now time.Time) []Event {
	prev := m.state
	m.state = StateIdle

	switch prev {
	case StatePinchPending:
		return []Event{{Type: EventClickUp, At: now}}
	case StateDragging:
		return []Event{{Type: EventDragEnd, At: now}}
	}
	return nil
}
