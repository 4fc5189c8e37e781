// Package testdata provides scripted landmark sequences for pipeline and
// end-to-end tests. A nil entry means "no hand detected" for that frame.
package testdata

import "github.com/ayusman/mudra/internal/tracker"

// Thumb-index distances comfortably outside the default hysteresis band.
const (
	openDistance   = 0.12
	closedDistance = 0.02
)

// ClickSequence scripts a short pinch: the hand appears open, pinches for
// closedFrames ticks, and opens again. With the pinch released before the
// drag-hold elapses this reads as a click.
func ClickSequence(closedFrames int) []*tracker.HandLandmarks {
	seq := []*tracker.HandLandmarks{
		tracker.PinchLandmarks(0.5, 0.5, openDistance),
	}
	for i := 0; i < closedFrames; i++ {
		seq = append(seq, tracker.PinchLandmarks(0.5, 0.5, closedDistance))
	}
	return append(seq, tracker.PinchLandmarks(0.5, 0.5, openDistance))
}

// DragSequence scripts a sustained pinch that travels across the frame:
// held long enough to promote into a drag, moving as it goes, then released.
func DragSequence(heldFrames int) []*tracker.HandLandmarks {
	seq := []*tracker.HandLandmarks{
		tracker.PinchLandmarks(0.4, 0.5, openDistance),
	}
	for i := 0; i < heldFrames; i++ {
		x := 0.4 + 0.02*float64(i)
		seq = append(seq, tracker.PinchLandmarks(x, 0.5, closedDistance))
	}
	return append(seq, tracker.PinchLandmarks(0.6, 0.5, openDistance))
}

// LossSequence scripts a pinch interrupted by tracking loss: the hand
// pinches and then vanishes for lostFrames ticks.
func LossSequence(lostFrames int) []*tracker.HandLandmarks {
	seq := []*tracker.HandLandmarks{
		tracker.PinchLandmarks(0.5, 0.5, openDistance),
		tracker.PinchLandmarks(0.5, 0.5, closedDistance),
	}
	for i := 0; i < lostFrames; i++ {
		seq = append(seq, nil)
	}
	return seq
}
