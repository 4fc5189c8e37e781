package engine

import (
	"time"

	"github.com/ayusman/mudra/internal/tracker"
)

// Tuning holds the runtime-tunable interpretation parameters. The right
// values depend on lighting, camera distance, and the operator's hand, so
// they are configuration rather than constants.
type Tuning struct {
	// Alpha is the smoothing factor in (0, 1].
	Alpha float64 `json:"alpha"`
	// PinchClose is the normalized thumb-index distance below which the
	// pinch classifies as closed.
	PinchClose float64 `json:"pinch_close"`
	// PinchOpen is the distance above which the pinch classifies as open.
	// Must exceed PinchClose; the gap is the hysteresis band.
	PinchOpen float64 `json:"pinch_open"`
	// DragHold is how long a pinch must be held to promote into a drag.
	DragHold time.Duration `json:"drag_hold"`
	// DeadZone is the unusable margin at each camera-frame edge.
	DeadZone float64 `json:"dead_zone"`
}

// Engine is the gesture interpretation core. One call to ProcessFrame per
// camera frame runs the full pipeline: smoothing, pinch classification,
// state arbitration, and screen mapping. All state mutation happens inside
// that single synchronous call, so the engine needs no locking of its own;
// the caller serializes access.
type Engine struct {
	thumbSmoother *Smoother
	indexSmoother *Smoother
	pinch         *PinchDetector
	machine       *StateMachine
	mapper        *CursorMapper

	// lossBudget is how many consecutive frames without a usable hand are
	// tolerated before an in-progress gesture is aborted and the filters
	// reset. A budget of 1 aborts on the first missing frame.
	lossBudget int
	missed     int
}

// New creates an Engine with the given tuning, tracking-loss budget, and
// target display resolution.
func New(t Tuning, lossBudget, screenWidth, screenHeight int) *Engine {
	if lossBudget < 1 {
		lossBudget = 1
	}
	return &Engine{
		thumbSmoother: NewSmoother(t.Alpha),
		indexSmoother: NewSmoother(t.Alpha),
		pinch:         NewPinchDetector(t.PinchClose, t.PinchOpen),
		machine:       NewStateMachine(t.DragHold),
		mapper:        NewCursorMapper(t.DeadZone, screenWidth, screenHeight),
		lossBudget:    lossBudget,
	}
}

// ProcessFrame interprets one camera frame. A nil or malformed hand counts
// as tracking loss for the tick. The returned events carry screen positions
// where applicable and are ready for dispatch; they are not retained by the
// engine.
func (e *Engine) ProcessFrame(hand *tracker.HandLandmarks, now time.Time) []Event {
	if !hand.Usable() {
		return e.processLoss(now)
	}

	e.missed = 0

	thumb := e.thumbSmoother.Smooth(hand.Thumb())
	index := e.indexSmoother.Smooth(hand.Index())

	pinch := e.pinch.Detect(thumb, index)
	events := e.machine.Step(pinch, now)

	// Attach the mapped cursor position to the motion events.
	pos := e.mapper.Map(index)
	for i := range events {
		if events[i].Type == EventMove || events[i].Type == EventDragMove {
			events[i].Position = pos
		}
	}

	return events
}

// processLoss handles a frame without a usable hand. Brief dropouts inside
// the loss budget hold the current gesture; once the budget is exhausted
// the gesture aborts with its terminating event and the filters reset, so
// a reacquired hand starts from fresh samples instead of stale ones.
func (e *Engine) processLoss(now time.Time) []Event {
	e.missed++
	if e.missed < e.lossBudget {
		return nil
	}

	var events []Event
	if e.missed == e.lossBudget {
		events = e.machine.ForceIdle(now)
		e.resetFilters()
	}
	e.machine.NoHand()
	return events
}

// Reset aborts any in-progress gesture and clears all per-fingertip state.
// The returned terminating event (if any) must still be dispatched; this is
// the shutdown path that keeps the downstream button from being left held.
func (e *Engine) Reset(now time.Time) []Event {
	events := e.machine.ForceIdle(now)
	e.resetFilters()
	e.missed = 0
	return events
}

func (e *Engine) resetFilters() {
	e.thumbSmoother.Reset()
	e.indexSmoother.Reset()
	e.pinch.Reset()
}

// State returns the current gesture state.
func (e *Engine) State() GestureState {
	return e.machine.State()
}

// PinchDistance returns the thumb-index distance of the last processed
// frame, for diagnostics.
func (e *Engine) PinchDistance() float64 {
	return e.pinch.Distance()
}

// SetTuning applies new interpretation parameters between frames. Invalid
// fields are ignored individually so a partial update cannot degrade the
// hysteresis or smoothing invariants.
func (e *Engine) SetTuning(t Tuning) {
	e.thumbSmoother.SetAlpha(t.Alpha)
	e.indexSmoother.SetAlpha(t.Alpha)
	e.pinch.SetThresholds(t.PinchClose, t.PinchOpen)
	e.machine.SetDragHold(t.DragHold)
	e.mapper.SetDeadZone(t.DeadZone)
}
