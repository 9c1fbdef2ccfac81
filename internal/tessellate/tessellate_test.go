package tessellate

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestSegmentsCounts(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	unit := Scale{X: 1, Y: 1}
	tests := []struct {
		name string
		mode Mode
		want int
	}{
		{"lines", Lines, 2 * 6},
		{"strip", Strip, 3 * 6},
		{"loop", Loop, 4 * 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Segments(pts, tt.mode, 2, unit)); got != tt.want {
				t.Errorf("len(Segments()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSegmentsDegenerate(t *testing.T) {
	unit := Scale{X: 1, Y: 1}
	if got := Segments([]Point{{1, 1}}, Strip, 1, unit); got != nil {
		t.Errorf("single point: got %d vertices, want nil", len(got))
	}
	if got := Segments([]Point{{1, 1}, {1, 1}}, Lines, 1, unit); len(got) != 0 {
		t.Errorf("zero-length segment: got %d vertices, want 0", len(got))
	}
	if got := Segments([]Point{{0, 0}, {1, 1}}, Lines, 1, Scale{}); got != nil {
		t.Errorf("zero scale: got %d vertices, want nil", len(got))
	}
	// Odd trailing point in Lines mode is ignored.
	if got := len(Segments([]Point{{0, 0}, {1, 0}, {5, 5}}, Lines, 1, unit)); got != 6 {
		t.Errorf("odd lines: got %d vertices, want 6", got)
	}
}

func TestNonFinitePointsSkipped(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	unit := Scale{X: 1, Y: 1}
	tests := []struct {
		name string
		pts  []Point
		mode Mode
		want int
	}{
		{"nan breaks strip", []Point{{0, 0}, {1, 0}, {2, nan}, {3, 0}, {4, 0}}, Strip, 2 * 6},
		{"inf breaks strip", []Point{{0, 0}, {1, inf}, {2, 0}, {3, 0}}, Strip, 1 * 6},
		{"leading nan", []Point{{nan, 0}, {1, 0}, {2, 0}}, Strip, 1 * 6},
		{"all nan", []Point{{nan, nan}, {nan, nan}}, Strip, 0},
		{"loop closing segment", []Point{{0, 0}, {1, 0}, {1, 1}, {-inf, 1}}, Loop, 2 * 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Segments(tt.pts, tt.mode, 1, unit)
			if len(v) != tt.want {
				t.Errorf("len(Segments()) = %d, want %d", len(v), tt.want)
			}
			for i, p := range v {
				if math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y)) || math.IsInf(float64(p.X), 0) || math.IsInf(float64(p.Y), 0) {
					t.Fatalf("vertex %d = (%v, %v), want finite", i, p.X, p.Y)
				}
			}
		})
	}

	if got := len(Points([]Point{{0, 0}, {nan, 1}, {inf, 2}}, 2, 4, unit)); got != 4*3 {
		t.Errorf("len(Points()) = %d, want %d", got, 4*3)
	}
}

func TestSegmentsPixelWidth(t *testing.T) {
	// Horizontal segment, 10 pixels per unit on y: a 4 pixel line is 0.4 units tall.
	v := Segments([]Point{{0, 0}, {1, 0}}, Lines, 4, Scale{X: 100, Y: 10})
	if len(v) != 6 {
		t.Fatalf("len = %d, want 6", len(v))
	}
	if !approx(v[0].Y, 0.2) || !approx(v[1].Y, -0.2) {
		t.Errorf("extrusion = (%v, %v), want (0.2, -0.2)", v[0].Y, v[1].Y)
	}
	if !approx(v[0].X, 0) || !approx(v[2].X, 1) {
		t.Errorf("x = (%v, %v), want (0, 1)", v[0].X, v[2].X)
	}
}

func TestPoints(t *testing.T) {
	v := Points([]Point{{0, 0}, {5, 5}}, 2, 8, Scale{X: 1, Y: 1})
	if len(v) != 2*8*3 {
		t.Fatalf("len = %d, want %d", len(v), 2*8*3)
	}
	// First fan vertex is the center, second lies on the rim at angle zero.
	if v[0].X != 0 || v[0].Y != 0 {
		t.Errorf("center = (%v, %v), want (0, 0)", v[0].X, v[0].Y)
	}
	if !approx(v[1].X, 1) || !approx(v[1].Y, 0) {
		t.Errorf("rim = (%v, %v), want (1, 0)", v[1].X, v[1].Y)
	}
	if got := len(Points([]Point{{0, 0}}, 1, 1, Scale{X: 1, Y: 1})); got != 9 {
		t.Errorf("minimum segments: len = %d, want 9", got)
	}
}

func TestCircle(t *testing.T) {
	pts := Circle(Point{X: 1, Y: 2}, 3, 4)
	want := []Point{{4, 2}, {1, 5}, {-2, 2}, {1, -1}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if !approx(pts[i].X, want[i].X) || !approx(pts[i].Y, want[i].Y) {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
	if Circle(Point{}, 1, 0) != nil {
		t.Error("Circle with 0 segments should be nil")
	}
}
