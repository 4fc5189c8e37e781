package tracker

import "gocv.io/x/gocv"

// Tracker defines the interface for hand tracking implementations.
type Tracker interface {
	// Track analyzes a video frame and returns the landmarks of the
	// primary detected hand, or nil if no hand is detected.
	Track(frame *gocv.Mat) (*HandLandmarks, error)

	// Close releases any resources held by the tracker.
	Close() error
}

// Config holds configuration options for hand tracking.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.7,
		MinTrackingConf: 0.7,
	}
}
