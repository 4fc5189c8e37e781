// Package tracker provides hand landmark tracking interfaces and types for gesture mouse control.
package tracker

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point represents a landmark position in normalized camera-frame space.
// X and Y are in [0, 1]; Z is the MediaPipe relative depth estimate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Valid reports whether the point is a usable sample: all components
// finite and X/Y inside the normalized frame.
func (p Point) Valid() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// Distance returns the Euclidean distance to q in the X/Y plane.
// Depth is ignored: the pinch gesture is judged in camera-frame space,
// where the Z estimate is too noisy to help.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// HandLandmarks represents the 21 hand landmarks detected for one frame.
type HandLandmarks struct {
	Points     [NumLandmarks]Point `json:"points"`
	Handedness string              `json:"handedness"` // "Left" or "Right"
	Score      float64             `json:"score"`
}

// Thumb returns the thumb-tip landmark.
func (h *HandLandmarks) Thumb() Point { return h.Points[ThumbTip] }

// Index returns the index-tip landmark.
func (h *HandLandmarks) Index() Point { return h.Points[IndexTip] }

// Usable reports whether the landmarks carry valid thumb-tip and
// index-tip samples. A frame that fails this check is treated as
// tracking loss rather than propagated into the engine.
func (h *HandLandmarks) Usable() bool {
	if h == nil {
		return false
	}
	return h.Thumb().Valid() && h.Index().Valid()
}
