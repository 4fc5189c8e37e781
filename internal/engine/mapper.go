package engine

import "github.com/ayusman/mudra/internal/tracker"

// CursorMapper converts a normalized camera-frame position into absolute
// screen pixels. A dead-zone margin at the frame edges is excluded from the
// usable range, because hand positions near the physical frame boundary are
// unreliable; the remaining range is rescaled so the full screen stays
// reachable without stretching the hand to the frame extremes.
type CursorMapper struct {
	deadZone     float64
	screenWidth  int
	screenHeight int
}

// NewCursorMapper creates a CursorMapper for the given display resolution.
// deadZone is the margin excluded at each frame edge, as a fraction of the
// frame; config validation keeps it below 0.5.
func NewCursorMapper(deadZone float64, screenWidth, screenHeight int) *CursorMapper {
	return &CursorMapper{
		deadZone:     deadZone,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Map converts the smoothed index-tip position to screen pixels, clamped
// to the display bounds.
func (m *CursorMapper) Map(p tracker.Point) ScreenPoint {
	x := rescale(p.X, m.deadZone)
	y := rescale(p.Y, m.deadZone)

	return ScreenPoint{
		X: clamp(int(x*float64(m.screenWidth)+0.5), 0, m.screenWidth-1),
		Y: clamp(int(y*float64(m.screenHeight)+0.5), 0, m.screenHeight-1),
	}
}

// SetDeadZone updates the dead-zone margin. Values outside [0, 0.5) are
// ignored.
func (m *CursorMapper) SetDeadZone(deadZone float64) {
	if deadZone < 0 || deadZone >= 0.5 {
		return
	}
	m.deadZone = deadZone
}

// rescale maps v from [deadZone, 1-deadZone] onto [0, 1], clamping values
// inside the margin to the nearest edge.
func rescale(v, deadZone float64) float64 {
	usable := 1 - 2*deadZone
	if usable <= 0 {
		return 0.5
	}

	scaled := (v - deadZone) / usable
	if scaled < 0 {
		return 0
	}
	if scaled > 1 {
		return 1
	}
	return scaled
}

// clamp restricts v to the inclusive range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
