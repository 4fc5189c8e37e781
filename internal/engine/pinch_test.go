package engine

import (
	"testing"

	"github.com/ayusman/mudra/internal/tracker"
)

// pair returns thumb and index points separated by the given normalized
// distance.
func pair(distance float64) (tracker.Point, tracker.Point) {
	return tracker.Point{X: 0.5, Y: 0.5}, tracker.Point{X: 0.5 + distance, Y: 0.5}
}

func TestPinchDetector_ClosesBelowCloseThreshold(t *testing.T) {
	d := NewPinchDetector(0.04, 0.07)

	if got := d.Detect(pair(0.10)); got != PinchOpen {
		t.Errorf("state at 0.10 = %v, want open", got)
	}
	if got := d.Detect(pair(0.03)); got != PinchClosed {
		t.Errorf("state at 0.03 = %v, want closed", got)
	}
}

func TestPinchDetector_OpensAboveOpenThreshold(t *testing.T) {
	d := NewPinchDetector(0.04, 0.07)

	d.Detect(pair(0.03))
	if got := d.Detect(pair(0.08)); got != PinchOpen {
		t.Errorf("state at 0.08 = %v, want open", got)
	}
}

func TestPinchDetector_HysteresisBandHoldsState(t *testing.T) {
	d := NewPinchDetector(0.04, 0.07)

	// Closed, then hover inside the band: stays closed.
	d.Detect(pair(0.03))
	for _, dist := range []float64{0.05, 0.065, 0.045, 0.06} {
		if got := d.Detect(pair(dist)); got != PinchClosed {
			t.Errorf("state at %f after close = %v, want closed", dist, got)
		}
	}

	// Open, then hover inside the band: stays open.
	d.Detect(pair(0.10))
	for _, dist := range []float64{0.065, 0.045, 0.06, 0.05} {
		if got := d.Detect(pair(dist)); got != PinchOpen {
			t.Errorf("state at %f after open = %v, want open", dist, got)
		}
	}
}

func TestPinchDetector_NoFlickerInsideBand(t *testing.T) {
	// A synthetic distance signal oscillating entirely within the
	// hysteresis band must produce zero state transitions.
	d := NewPinchDetector(0.04, 0.07)
	d.Detect(pair(0.03)) // establish closed

	transitions := 0
	prev := d.State()
	for i := 0; i < 50; i++ {
		dist := 0.045
		if i%2 == 1 {
			dist = 0.065
		}
		got := d.Detect(pair(dist))
		if got != prev {
			transitions++
			prev = got
		}
	}

	if transitions != 0 {
		t.Errorf("got %d transitions inside hysteresis band, want 0", transitions)
	}
}

func TestPinchDetector_DistanceReported(t *testing.T) {
	d := NewPinchDetector(0.04, 0.07)

	d.Detect(pair(0.05))
	if got := d.Distance(); got < 0.049 || got > 0.051 {
		t.Errorf("Distance() = %f, want ~0.05", got)
	}
}

func TestPinchDetector_ResetReturnsToOpen(t *testing.T) {
	d := NewPinchDetector(0.04, 0.07)

	d.Detect(pair(0.03))
	d.Reset()

	if got := d.State(); got != PinchOpen {
		t.Errorf("state after reset = %v, want open", got)
	}
}

func TestPinchDetector_SetThresholdsRejectsInvertedBand(t *testing.T) {
	d := NewPinchDetector(0.04, 0.07)

	// open <= close would degrade to flicker-prone single-cutoff behavior.
	d.SetThresholds(0.07, 0.04)
	d.SetThresholds(0.05, 0.05)
	if d.closeThresh != 0.04 || d.openThresh != 0.07 {
		t.Errorf("thresholds = (%f, %f) after invalid updates, want (0.04, 0.07)",
			d.closeThresh, d.openThresh)
	}

	d.SetThresholds(0.03, 0.06)
	if d.closeThresh != 0.03 || d.openThresh != 0.06 {
		t.Errorf("thresholds = (%f, %f), want (0.03, 0.06)", d.closeThresh, d.openThresh)
	}
}
