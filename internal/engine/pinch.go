package engine

import "github.com/ayusman/mudra/internal/tracker"

// PinchState classifies the thumb-index contact for one frame.
type PinchState string

const (
	// PinchOpen means the fingertips are apart.
	PinchOpen PinchState = "open"
	// PinchClosed means the fingertips are in contact.
	PinchClosed PinchState = "closed"
)

// PinchDetector classifies thumb-index contact with hysteresis. The state
// switches to Closed only below the close threshold and back to Open only
// above the larger open threshold; a distance hovering inside the band
// between them keeps the previous classification, so measurement noise near
// a single cutoff cannot flicker the state.
type PinchDetector struct {
	closeThresh float64
	openThresh  float64
	state       PinchState
	distance    float64
}

// NewPinchDetector creates a PinchDetector with the given thresholds in
// normalized distance units. Config validation guarantees open > close.
func NewPinchDetector(closeThresh, openThresh float64) *PinchDetector {
	return &PinchDetector{
		closeThresh: closeThresh,
		openThresh:  openThresh,
		state:       PinchOpen,
	}
}

// Detect classifies the current frame given the smoothed thumb-tip and
// index-tip positions and returns the resulting state.
func (d *PinchDetector) Detect(thumb, index tracker.Point) PinchState {
	d.distance = thumb.Distance(index)

	switch {
	case d.distance <= d.closeThresh:
		d.state = PinchClosed
	case d.distance >= d.openThresh:
		d.state = PinchOpen
	}
	// Inside the hysteresis band the previous state holds.

	return d.state
}

// State returns the current classification without processing a frame.
func (d *PinchDetector) State() PinchState {
	return d.state
}

// Distance returns the thumb-index distance of the last processed frame.
func (d *PinchDetector) Distance() float64 {
	return d.distance
}

// Reset returns the detector to the Open state, e.g. after tracking loss.
func (d *PinchDetector) Reset() {
	d.state = PinchOpen
	d.distance = 0
}

// SetThresholds updates the hysteresis band. Invalid pairs (open <= close)
// are ignored so runtime tuning cannot break the flicker guarantee.
func (d *PinchDetector) SetThresholds(closeThresh, openThresh float64) {
	if closeThresh <= 0 || openThresh <= closeThresh {
		return
	}
	d.closeThresh = closeThresh
	d.openThresh = openThresh
}
