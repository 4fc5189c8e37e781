package tracker

import (
	"gocv.io/x/gocv"
)

// MockTracker is a test implementation of the Tracker interface.
// It replays a scripted sequence of per-frame detections.
type MockTracker struct {
	frames []*HandLandmarks
	pos    int
	err    error
}

// NewMockTracker creates a new MockTracker instance.
func NewMockTracker() *MockTracker {
	return &MockTracker{}
}

// SetFrames sets the scripted per-frame detections. A nil entry means
// "no hand detected" for that frame. After the script is exhausted the
// last entry repeats.
func (m *MockTracker) SetFrames(frames []*HandLandmarks) {
	m.frames = frames
	m.pos = 0
}

// SetError sets the error that will be returned by Track.
func (m *MockTracker) SetError(err error) {
	m.err = err
}

// Track returns the next scripted detection.
func (m *MockTracker) Track(frame *gocv.Mat) (*HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, nil
	}
	hand := m.frames[m.pos]
	if m.pos < len(m.frames)-1 {
		m.pos++
	}
	return hand, nil
}

// Close is a no-op for the mock tracker.
func (m *MockTracker) Close() error {
	return nil
}

// PinchLandmarks returns a HandLandmarks with the thumb tip and index tip
// separated by the given normalized distance, centered at (x, y).
// Remaining landmarks are filled with plausible open-hand positions.
func PinchLandmarks(x, y, distance float64) *HandLandmarks {
	lm := &HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	half := distance / 2
	lm.Points[ThumbTip] = Point{X: x - half, Y: y, Z: 0}
	lm.Points[IndexTip] = Point{X: x + half, Y: y, Z: 0}

	// Fill the rest with a rough hand shape below the fingertips so the
	// frame looks like a real detection rather than two floating points.
	lm.Points[Wrist] = Point{X: x, Y: y + 0.3, Z: 0}
	lm.Points[ThumbCMC] = Point{X: x - 0.05, Y: y + 0.22, Z: 0}
	lm.Points[ThumbMCP] = Point{X: x - 0.06, Y: y + 0.15, Z: 0}
	lm.Points[ThumbIP] = Point{X: x - half - 0.02, Y: y + 0.07, Z: 0}
	lm.Points[IndexMCP] = Point{X: x + 0.02, Y: y + 0.18, Z: 0}
	lm.Points[IndexPIP] = Point{X: x + 0.03, Y: y + 0.12, Z: 0}
	lm.Points[IndexDIP] = Point{X: x + half + 0.01, Y: y + 0.06, Z: 0}
	for i := MiddleMCP; i <= PinkyTip; i++ {
		lm.Points[i] = Point{X: x + 0.05, Y: y + 0.2, Z: 0}
	}

	return lm
}

// HandAt returns an open-hand HandLandmarks with the index tip at (x, y).
// The thumb-index distance is well above any reasonable pinch threshold.
func HandAt(x, y float64) *HandLandmarks {
	const spread = 0.25
	return PinchLandmarks(x-spread/2, y, spread)
}
