// Package pointer provides OS pointer injection for the gesture engine.
package pointer

import "github.com/go-vgo/robotgo"

// SystemPointer injects pointer events through the host OS using robotgo.
// It implements engine.Pointer.
type SystemPointer struct{}

// NewSystemPointer creates a pointer backed by the OS cursor APIs.
func NewSystemPointer() *SystemPointer {
	return &SystemPointer{}
}

// MoveTo places the cursor at absolute screen coordinates.
func (p *SystemPointer) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// ButtonDown presses the primary (left) button.
func (p *SystemPointer) ButtonDown() error {
	return robotgo.Toggle("left", "down")
}

// ButtonUp releases the primary (left) button.
func (p *SystemPointer) ButtonUp() error {
	return robotgo.Toggle("left", "up")
}

// ScreenSize returns the primary display resolution in pixels.
func ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}
