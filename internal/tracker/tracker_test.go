package tracker

import (
	"math"
	"testing"
)

func TestPointValid(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"origin", Point{X: 0, Y: 0}, true},
		{"center", Point{X: 0.5, Y: 0.5, Z: -0.02}, true},
		{"max corner", Point{X: 1, Y: 1}, true},
		{"x out of range", Point{X: 1.2, Y: 0.5}, false},
		{"negative y", Point{X: 0.5, Y: -0.1}, false},
		{"nan", Point{X: math.NaN(), Y: 0.5}, false},
		{"inf", Point{X: 0.5, Y: math.Inf(1)}, false},
		{"nan depth", Point{X: 0.5, Y: 0.5, Z: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0.1, Y: 0.2}
	b := Point{X: 0.4, Y: 0.6}

	got := a.Distance(b)
	want := 0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Distance() = %f, want %f", got, want)
	}

	// Depth must not contribute
	c := Point{X: 0.1, Y: 0.2, Z: 5.0}
	if d := a.Distance(c); d != 0 {
		t.Errorf("Distance() with depth-only difference = %f, want 0", d)
	}
}

func TestHandLandmarksUsable(t *testing.T) {
	hand := PinchLandmarks(0.5, 0.5, 0.1)
	if !hand.Usable() {
		t.Error("expected pinch landmarks to be usable")
	}

	hand.Points[IndexTip].X = math.NaN()
	if hand.Usable() {
		t.Error("expected landmarks with NaN index tip to be unusable")
	}

	var nilHand *HandLandmarks
	if nilHand.Usable() {
		t.Error("expected nil landmarks to be unusable")
	}
}

func TestPinchLandmarksDistance(t *testing.T) {
	hand := PinchLandmarks(0.5, 0.5, 0.04)

	got := hand.Thumb().Distance(hand.Index())
	if math.Abs(got-0.04) > 1e-9 {
		t.Errorf("thumb-index distance = %f, want 0.04", got)
	}
}

func TestHandAtIndexTip(t *testing.T) {
	hand := HandAt(0.6, 0.4)

	idx := hand.Index()
	if math.Abs(idx.X-0.6) > 1e-9 || math.Abs(idx.Y-0.4) > 1e-9 {
		t.Errorf("index tip = (%f, %f), want (0.6, 0.4)", idx.X, idx.Y)
	}
}

func TestMockTrackerReplay(t *testing.T) {
	mock := NewMockTracker()
	mock.SetFrames([]*HandLandmarks{
		HandAt(0.3, 0.3),
		nil,
		HandAt(0.7, 0.7),
	})

	first, err := mock.Track(nil)
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}
	if first == nil {
		t.Fatal("expected hand on first frame")
	}

	second, _ := mock.Track(nil)
	if second != nil {
		t.Error("expected no hand on second frame")
	}

	// Last frame repeats once the script is exhausted
	for i := 0; i < 3; i++ {
		hand, _ := mock.Track(nil)
		if hand == nil {
			t.Fatalf("expected hand on replayed frame %d", i)
		}
	}
}
