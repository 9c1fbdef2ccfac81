package plot

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/plot/gpucore"
)

// Vec2 is a point or vector in logical coordinates.
type Vec2 struct {
	X, Y float32
}

// Rect is the logical coordinate rectangle mapped onto the window.
type Rect struct {
	Left, Right, Bottom, Top float32
}

// Width returns Right - Left. It is negative for a mirrored rectangle.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns Top - Bottom. It is negative for a mirrored rectangle.
func (r Rect) Height() float32 { return r.Top - r.Bottom }

// Min returns the component-wise minimum corner.
func (r Rect) Min() Vec2 {
	return Vec2{math32.Min(r.Left, r.Right), math32.Min(r.Bottom, r.Top)}
}

// Max returns the component-wise maximum corner.
func (r Rect) Max() Vec2 {
	return Vec2{math32.Max(r.Left, r.Right), math32.Max(r.Bottom, r.Top)}
}

// quadVertices returns two triangles spanning [-hx, hx] x [-hy, hy].
// Texture v grows downward so image row 0 lands at the top.
func quadVertices(hx, hy float32) []gpucore.Vertex {
	return []gpucore.Vertex{
		{X: hx, Y: -hy, U: 1, V: 1},
		{X: hx, Y: hy, U: 1, V: 0},
		{X: -hx, Y: hy, U: 0, V: 0},
		{X: hx, Y: -hy, U: 1, V: 1},
		{X: -hx, Y: hy, U: 0, V: 0},
		{X: -hx, Y: -hy, U: 0, V: 1},
	}
}

// SetScreen maps the logical rectangle onto the window and returns its
// projection. Setting the active rectangle again returns the cached
// projection without touching the device.
func (w *Window) SetScreen(left, right, bottom, top float32) (Mat4, error) {
	if w.closed {
		return Mat4{}, ErrClosed
	}
	r := Rect{Left: left, Right: right, Bottom: bottom, Top: top}
	if w.screenSet && r == w.screen {
		return w.projection, nil
	}
	sx, sy := r.Width(), r.Height()
	if sx == 0 || sy == 0 || math32.IsNaN(sx) || math32.IsNaN(sy) || math32.IsInf(sx, 0) || math32.IsInf(sy, 0) {
		return Mat4{}, fmt.Errorf("%w: %+v", ErrInvalidScreen, r)
	}

	if err := w.device.WriteMesh(w.screenQuad, quadVertices(sx/2, sy/2)); err != nil {
		return Mat4{}, fmt.Errorf("plot: set screen: %w", err)
	}
	w.screen = r
	w.screenSet = true
	w.projection = Ortho(left, right, bottom, top, -1, 1)
	w.quadProjection = Mat4{
		2 / sx, 0, 0, 0,
		0, 2 / sy, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
	Logger().Debug("plot: screen set", "left", left, "right", right, "bottom", bottom, "top", top)
	return w.projection, nil
}

// SetScreenCentered maps a square of the given size centered at c.
func (w *Window) SetScreenCentered(c Vec2, size float32) (Mat4, error) {
	return w.SetScreen(c.X-size/2, c.X+size/2, c.Y-size/2, c.Y+size/2)
}

// Screen returns the active logical rectangle.
func (w *Window) Screen() Rect {
	return w.screen
}

// Projection returns the projection of the active rectangle.
func (w *Window) Projection() Mat4 {
	return w.projection
}

// pixelScale returns device pixels per logical unit on each axis.
func (w *Window) pixelScale() (float32, float32) {
	return float32(w.fbW) / math32.Abs(w.screen.Width()), float32(w.fbH) / math32.Abs(w.screen.Height())
}

// baseView fills the rectangle-derived fields of a view block.
func (w *Window) baseView(projection, model Mat4) gpucore.View {
	lo, hi := w.screen.Min(), w.screen.Max()
	return gpucore.View{
		Projection: projection,
		Model:      model,
		Color:      gpucore.Color{R: 1, G: 1, B: 1, A: 1},
		LeftBottom: [2]float32{w.screen.Left, w.screen.Bottom},
		RightTop:   [2]float32{w.screen.Right, w.screen.Top},
		Min:        [2]float32{lo.X, lo.Y},
		Max:        [2]float32{hi.X, hi.Y},
		Size:       [2]float32{hi.X - lo.X, hi.Y - lo.Y},
	}
}

// screenView is the view for draws over the full-surface quad.
func (w *Window) screenView() gpucore.View {
	return w.baseView(w.quadProjection, Identity4())
}

// logicalView is the view for geometry given in logical coordinates.
func (w *Window) logicalView(model Mat4) gpucore.View {
	return w.baseView(w.projection, model)
}
