package engine

import (
	"testing"

	"github.com/ayusman/mudra/internal/tracker"
)

func TestCursorMapper_CornersMapToScreenExtremes(t *testing.T) {
	m := NewCursorMapper(0, 1920, 1080)

	tests := []struct {
		name  string
		point tracker.Point
		want  ScreenPoint
	}{
		{"top left", tracker.Point{X: 0, Y: 0}, ScreenPoint{X: 0, Y: 0}},
		{"bottom right", tracker.Point{X: 1, Y: 1}, ScreenPoint{X: 1919, Y: 1079}},
		{"center", tracker.Point{X: 0.5, Y: 0.5}, ScreenPoint{X: 960, Y: 540}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Map(tt.point); got != tt.want {
				t.Errorf("Map(%+v) = %+v, want %+v", tt.point, got, tt.want)
			}
		})
	}
}

func TestCursorMapper_DeadZoneRescalesUsableRange(t *testing.T) {
	m := NewCursorMapper(0.1, 1000, 1000)

	// The inner edge of the dead-zone maps to the screen edge.
	if got := m.Map(tracker.Point{X: 0.1, Y: 0.1}); got.X != 0 || got.Y != 0 {
		t.Errorf("Map(0.1, 0.1) = %+v, want origin", got)
	}
	if got := m.Map(tracker.Point{X: 0.9, Y: 0.9}); got.X != 999 || got.Y != 999 {
		t.Errorf("Map(0.9, 0.9) = %+v, want far corner", got)
	}

	// The frame center stays at the screen center.
	if got := m.Map(tracker.Point{X: 0.5, Y: 0.5}); got.X != 500 || got.Y != 500 {
		t.Errorf("Map(0.5, 0.5) = %+v, want (500, 500)", got)
	}
}

func TestCursorMapper_PositionsInsideDeadZoneClampToEdge(t *testing.T) {
	m := NewCursorMapper(0.1, 1000, 1000)

	if got := m.Map(tracker.Point{X: 0.02, Y: 0.05}); got.X != 0 || got.Y != 0 {
		t.Errorf("Map inside margin = %+v, want origin", got)
	}
	if got := m.Map(tracker.Point{X: 0.98, Y: 0.95}); got.X != 999 || got.Y != 999 {
		t.Errorf("Map inside far margin = %+v, want far corner", got)
	}
}

func TestCursorMapper_OutputClampedToDisplayBounds(t *testing.T) {
	m := NewCursorMapper(0, 800, 600)

	// Even inputs slightly outside the frame must stay on screen.
	got := m.Map(tracker.Point{X: 1.0, Y: 1.0})
	if got.X < 0 || got.X > 799 || got.Y < 0 || got.Y > 599 {
		t.Errorf("Map produced off-screen point %+v", got)
	}
}

func TestCursorMapper_SetDeadZoneIgnoresInvalid(t *testing.T) {
	m := NewCursorMapper(0.1, 1000, 1000)

	m.SetDeadZone(-0.1)
	m.SetDeadZone(0.5)
	if m.deadZone != 0.1 {
		t.Errorf("deadZone = %f after invalid updates, want 0.1", m.deadZone)
	}

	m.SetDeadZone(0.2)
	if m.deadZone != 0.2 {
		t.Errorf("deadZone = %f, want 0.2", m.deadZone)
	}
}
