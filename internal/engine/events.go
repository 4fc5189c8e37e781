// Package engine interprets per-frame hand landmarks as pointer interaction
// events: cursor movement, click, and drag.
package engine

import "time"

// EventType identifies a pointer interaction event.
type EventType string

const (
	// EventMove moves the cursor without any button held.
	EventMove EventType = "move"
	// EventClickDown presses the primary button at the start of a pinch.
	EventClickDown EventType = "click_down"
	// EventClickUp releases the primary button, completing a click.
	EventClickUp EventType = "click_up"
	// EventDragStart promotes a held pinch into a drag.
	EventDragStart EventType = "drag_start"
	// EventDragMove moves the cursor while a drag is active.
	EventDragMove EventType = "drag_move"
	// EventDragEnd releases the button and ends the active drag.
	EventDragEnd EventType = "drag_end"
)

// ScreenPoint is an absolute pixel position on the target display.
type ScreenPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Event is a single pointer interaction chosen by the engine for a frame.
// Position is only meaningful for EventMove and EventDragMove.
type Event struct {
	Type     EventType   `json:"type"`
	Position ScreenPoint `json:"position"`
	At       time.Time   `json:"at"`
}
