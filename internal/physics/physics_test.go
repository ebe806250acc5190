package physics

import "testing"

func TestOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"inside", Rect{X: 15, Y: 15, Width: 5, Height: 5}, true},
		{"partial", Rect{X: 25, Y: 25, Width: 20, Height: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, Width: 5, Height: 5}, false},
		{"left of", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"above", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.other); got != tt.want {
				t.Errorf("Overlaps(base, %+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := Overlaps(tt.other, base); got != tt.want {
				t.Errorf("Overlaps(%+v, base) = %v, want %v (not symmetric)", tt.other, got, tt.want)
			}
		})
	}
}

func TestInsetAndCenter(t *testing.T) {
	r := Rect{X: 50, Y: 100, Width: 50, Height: 50}
	hb := r.Inset(10, 10, 30, 30)
	if hb != (Rect{X: 60, Y: 110, Width: 30, Height: 30}) {
		t.Fatalf("Inset = %+v", hb)
	}
	cx, cy := r.Center()
	if cx != 75 || cy != 125 {
		t.Fatalf("Center = (%v, %v), want (75, 125)", cx, cy)
	}
	if r.Right() != 100 || r.Bottom() != 150 {
		t.Fatalf("Right/Bottom = %v/%v, want 100/150", r.Right(), r.Bottom())
	}
}

func TestContains(t *testing.T) {
	if !Contains(100, 50, 0, 0) || !Contains(100, 50, 100, 50) {
		t.Error("edges should be inside")
	}
	if Contains(100, 50, -0.1, 10) || Contains(100, 50, 10, 50.1) {
		t.Error("points past the edges should be outside")
	}
}
