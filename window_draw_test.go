package plot

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/plot/gpucore"
)

func TestDrawLines(t *testing.T) {
	w, dev, _ := newTestWindow(t, 10, 10)
	if _, err := w.SetScreen(0, 10, 0, 10); err != nil {
		t.Fatal(err)
	}
	pts := []Vec2{{1, 1}, {9, 1}, {9, 9}}

	if err := w.DrawLines(pts, 2, 2, false); err != nil {
		t.Fatalf("DrawLines(pairs) error = %v", err)
	}
	if got := len(dev.lastDraw(t, "lines").Vertices); got != 6 {
		t.Errorf("pairs: %d vertices, want 6", got)
	}
	if err := w.DrawLines(pts, 2, 2, true); err != nil {
		t.Fatalf("DrawLines(strip) error = %v", err)
	}
	call := dev.lastDraw(t, "lines")
	if got := len(call.Vertices); got != 12 {
		t.Errorf("strip: %d vertices, want 12", got)
	}
	if call.View.Color != (gpucore.Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("color = %+v, want palette red", call.View.Color)
	}
	if call.Program != w.solid {
		t.Error("lines not drawn with the solid program")
	}

	if err := w.Update(); err != nil {
		t.Fatal(err)
	}
	// Bottom segment at y = 1 is pixel row 8 from the top.
	if got := w.Capture().RGBAAt(5, 8); got.R != 0xFF || got.G != 0 {
		t.Errorf("pixel on the line = %v, want red", got)
	}

	if err := w.DrawLines(pts, 99, 1, true); !errors.Is(err, ErrPaletteIndex) {
		t.Errorf("bad color error = %v, want %v", err, ErrPaletteIndex)
	}
}

func TestDrawPointsAndCircle(t *testing.T) {
	w, dev, _ := newTestWindow(t, 16, 16, WithPointSegments(6))
	if err := w.DrawPoints([]Vec2{{4, 4}, {8, 8}}, 1, 3); err != nil {
		t.Fatalf("DrawPoints() error = %v", err)
	}
	if got := len(dev.lastDraw(t, "points").Vertices); got != 2*6*3 {
		t.Errorf("points: %d vertices, want %d", got, 2*6*3)
	}

	if err := w.DrawCircle(Vec2{8, 8}, 4, 1, 1, 16); err != nil {
		t.Fatalf("DrawCircle() error = %v", err)
	}
	if got := len(dev.lastDraw(t, "circle").Vertices); got != 16*6 {
		t.Errorf("circle: %d vertices, want %d", got, 16*6)
	}
	if err := w.DrawCircle(Vec2{}, 1, 1, 1, 2); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("2-segment circle error = %v, want %v", err, ErrInvalidSize)
	}

	// Nothing to draw still validates the color.
	if err := w.DrawPoints(nil, 1, 3); err != nil {
		t.Errorf("DrawPoints(nil) error = %v", err)
	}
	if err := w.DrawPoints(nil, -1, 3); !errors.Is(err, ErrPaletteIndex) {
		t.Errorf("DrawPoints(nil, -1) error = %v, want %v", err, ErrPaletteIndex)
	}
}

func TestDrawFunctionSampling(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		samples int
	}{
		{"default stride", nil, 25},
		{"stride 10", []Option{WithFunctionStride(10)}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, dev, _ := newTestWindow(t, 100, 50, tt.opts...)
			if _, err := w.SetScreen(-1, 1, -1, 1); err != nil {
				t.Fatal(err)
			}
			var xs []float32
			f := func(x float32) float32 {
				xs = append(xs, x)
				return x / 2
			}
			if err := w.DrawFunction(f, 1, 1); err != nil {
				t.Fatalf("DrawFunction() error = %v", err)
			}
			if len(xs) != tt.samples {
				t.Fatalf("%d samples, want %d", len(xs), tt.samples)
			}
			if xs[0] != -1 {
				t.Errorf("first sample x = %v, want -1", xs[0])
			}
			if got := len(dev.lastDraw(t, "function").Vertices); got != (tt.samples-1)*6 {
				t.Errorf("%d vertices, want %d", got, (tt.samples-1)*6)
			}
		})
	}
}

func TestDrawFunctionSkipsNonFinite(t *testing.T) {
	w, dev, _ := newTestWindow(t, 100, 50)
	if _, err := w.SetScreen(-2, 2, -2, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.DrawFunction(math32.Sqrt, 1, 1); err != nil {
		t.Fatalf("DrawFunction() error = %v", err)
	}
	verts := dev.lastDraw(t, "function").Vertices
	if len(verts) == 0 {
		t.Fatal("no vertices drawn for the defined half of sqrt")
	}
	for i, v := range verts {
		if math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) {
			t.Fatalf("vertex %d = (%v, %v), want finite", i, v.X, v.Y)
		}
	}
}

func TestDrawAxis(t *testing.T) {
	w, dev, _ := newTestWindow(t, 40, 40)
	if _, err := w.SetScreen(-2, 2, -2, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.DrawAxis(2, 1, 3, 1); err != nil {
		t.Fatalf("DrawAxis() error = %v", err)
	}

	grid := dev.lastDraw(t, "axis_grid")
	// x in [-2, 2) and y in [-2, 2): 8 thin lines.
	if got := len(grid.Vertices); got != 8*6 {
		t.Errorf("grid: %d vertices, want %d", got, 8*6)
	}
	if grid.View.Color != (gpucore.Color{R: 1, G: 1, B: 1, A: 1}) {
		t.Errorf("grid color = %+v, want white", grid.View.Color)
	}
	axes := dev.lastDraw(t, "axis")
	if got := len(axes.Vertices); got != 2*6 {
		t.Errorf("axes: %d vertices, want 12", got)
	}
	if axes.View.Color != (gpucore.Color{R: 1, A: 1}) {
		t.Errorf("axis color = %+v, want red", axes.View.Color)
	}
	// Thin lines reach one unit past the rectangle.
	var minY, maxY float32
	for _, v := range grid.Vertices {
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	if minY > -3 || maxY < 3 {
		t.Errorf("grid y span = [%v, %v], want at least [-3, 3]", minY, maxY)
	}

	if err := w.DrawAxis(1, 7, 1, 1); !errors.Is(err, ErrPaletteIndex) {
		t.Errorf("bad thin color error = %v, want %v", err, ErrPaletteIndex)
	}
}
