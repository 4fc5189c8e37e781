package engine

import "github.com/ayusman/mudra/internal/tracker"

// Smoother reduces per-frame jitter in a single fingertip position using
// an exponential moving average:
//
//	smoothed' = alpha*raw + (1-alpha)*smoothed
//
// Smaller alpha suppresses more tremor at the cost of lag. The first sample
// after a Reset passes through unchanged; the filter never extrapolates, so
// a stale hand position cannot drag the cursor on its own.
type Smoother struct {
	alpha       float64
	prev        tracker.Point
	initialized bool
}

// NewSmoother creates a Smoother with the given smoothing factor.
// Alpha is expected to be in (0, 1]; config validation enforces this.
func NewSmoother(alpha float64) *Smoother {
	return &Smoother{alpha: alpha}
}

// Smooth blends the new raw sample with the previous smoothed value and
// returns the updated smoothed position.
func (s *Smoother) Smooth(raw tracker.Point) tracker.Point {
	if !s.initialized {
		s.prev = raw
		s.initialized = true
		return s.prev
	}

	s.prev = tracker.Point{
		X: s.prev.X + s.alpha*(raw.X-s.prev.X),
		Y: s.prev.Y + s.alpha*(raw.Y-s.prev.Y),
		Z: s.prev.Z + s.alpha*(raw.Z-s.prev.Z),
	}
	return s.prev
}

// Reset discards the filter state. The next sample reinitializes the
// filter instead of being blended with a stale position.
func (s *Smoother) Reset() {
	s.initialized = false
	s.prev = tracker.Point{}
}

// SetAlpha updates the smoothing factor. Values outside (0, 1] are ignored.
func (s *Smoother) SetAlpha(alpha float64) {
	if alpha <= 0 || alpha > 1 {
		return
	}
	s.alpha = alpha
}
