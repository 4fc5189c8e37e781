package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/tracker"
)

// runPipeline is the frame loop. It steps the camera between idle and
// active frame rates on motion, and runs every captured frame through
// tracking and interpretation. Tracking runs in idle mode too: a perfectly
// still hand holding a pinch must not be dropped just because nothing in
// the picture changed.
func (a *App) runPipeline(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	activeMode := false
	lastMotion := time.Now()

	interval := time.Second / time.Duration(a.cfg.IdleFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			if moved, _ := a.motion.Detect(frame); moved {
				lastMotion = now
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(a.cfg.ActiveFPS)
					interval = time.Second / time.Duration(a.cfg.ActiveFPS)
					ticker.Reset(interval)
				}
			} else if activeMode && now.Sub(lastMotion) > idleTimeout {
				activeMode = false
				a.camera.SetFPS(a.cfg.IdleFPS)
				interval = time.Second / time.Duration(a.cfg.IdleFPS)
				ticker.Reset(interval)
			}

			hand, err := a.track.Track(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error tracking hand: %v", err)
				hand = nil // counts as tracking loss for this tick
			}

			a.processFrame(hand, now)
		}
	}
}

// processFrame runs one tracked (or missing) hand through interpretation
// and dispatch. Exposed separately from the loop so tests can drive the
// pipeline with scripted frames and timestamps.
func (a *App) processFrame(hand *tracker.HandLandmarks, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.frames++
	a.dispatchLocked(a.engine.ProcessFrame(hand, now))
}
