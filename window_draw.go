package plot

import (
	"fmt"

	"github.com/gogpu/plot/gpucore"
	"github.com/gogpu/plot/internal/tessellate"
)

// Grid is a 2D array of palette indices, row 0 at the top.
type Grid [][]int

// HeatMap is a 2D array of values, row 0 at the top.
type HeatMap [][]float32

// gridSize returns the column and row counts of a rectangular grid.
func gridSize[T any](rows [][]T) (int, int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), width)
		}
	}
	return width, len(rows), nil
}

// color resolves a palette index under the window's wrap policy.
func (w *Window) color(i int) (RGBA, error) {
	return w.palette.lookup(i, w.opts.paletteWrap)
}

// gridPixels maps a palette grid to RGBA8 bytes.
func (w *Window) gridPixels(pixels Grid) (int, int, []byte, error) {
	width, height, err := gridSize(pixels)
	if err != nil {
		return 0, 0, nil, err
	}
	out := make([]byte, 0, width*height*4)
	for y, row := range pixels {
		for x, idx := range row {
			c, err := w.color(idx)
			if err != nil {
				return 0, 0, nil, fmt.Errorf("cell (%d, %d): %w", x, y, err)
			}
			out = append(out, c.R, c.G, c.B, c.A)
		}
	}
	return width, height, out, nil
}

// DrawPixels stretches a palette-indexed grid over the whole window.
func (w *Window) DrawPixels(pixels Grid) error {
	if w.closed {
		return ErrClosed
	}
	width, height, rgba, err := w.gridPixels(pixels)
	if err != nil {
		return fmt.Errorf("plot: draw pixels: %w", err)
	}
	return w.drawScreenPixels("pixels", width, height, rgba)
}

// DrawHeatMap stretches a grid of values over the whole window, coloring
// each cell by its position within [lo, hi] on the HeatColor ramp.
func (w *Window) DrawHeatMap(values HeatMap, lo, hi float32) error {
	if w.closed {
		return ErrClosed
	}
	width, height, err := gridSize(values)
	if err != nil {
		return fmt.Errorf("plot: draw heat map: %w", err)
	}
	rgba := make([]byte, 0, width*height*4)
	for _, row := range values {
		for _, v := range row {
			c := HeatColor(v, lo, hi)
			rgba = append(rgba, c.R, c.G, c.B, c.A)
		}
	}
	return w.drawScreenPixels("heat_map", width, height, rgba)
}

// DrawRGB stretches raw RGB bytes over the whole window. data must hold
// exactly 3*width*height bytes, top row first.
func (w *Window) DrawRGB(width, height int, data []byte) error {
	if w.closed {
		return ErrClosed
	}
	rgba, err := expand(width, height, 3, len(data), func(i int) uint8 { return data[i] })
	if err != nil {
		return fmt.Errorf("plot: draw rgb: %w", err)
	}
	return w.drawScreenPixels("rgb", width, height, rgba)
}

// DrawRGBA stretches raw RGBA bytes over the whole window. data must hold
// exactly 4*width*height bytes, top row first.
func (w *Window) DrawRGBA(width, height int, data []byte) error {
	if w.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("plot: draw rgba: %w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(data) != width*height*4 {
		return fmt.Errorf("plot: draw rgba: %w: %d bytes for %dx%d", ErrBufferSize, len(data), width, height)
	}
	return w.drawScreenPixels("rgba", width, height, data)
}

// drawScreenPixels uploads a transient texture and blits it over the
// full-surface quad.
func (w *Window) drawScreenPixels(label string, width, height int, rgba []byte) error {
	tex, err := w.device.CreateTexture(gpucore.TextureDesc{Label: label, Width: width, Height: height}, rgba)
	if err != nil {
		return fmt.Errorf("plot: %s: %w", label, err)
	}
	defer w.device.DestroyTexture(tex)

	err = w.device.Draw(&gpucore.DrawCall{
		Label:   label,
		Target:  w.surface,
		Program: w.blit,
		Mesh:    w.screenQuad,
		Texture: tex,
		View:    w.screenView(),
	})
	if err != nil {
		return fmt.Errorf("plot: %s: %w", label, err)
	}
	return nil
}

// drawSolid fills tessellated geometry given in logical coordinates.
func (w *Window) drawSolid(label string, vertices []gpucore.Vertex, color int) error {
	c, err := w.color(color)
	if err != nil {
		return fmt.Errorf("plot: %s: %w", label, err)
	}
	if len(vertices) == 0 {
		return nil
	}
	view := w.logicalView(Identity4())
	view.Color = c.float()
	err = w.device.Draw(&gpucore.DrawCall{
		Label:    label,
		Target:   w.surface,
		Program:  w.solid,
		Vertices: vertices,
		View:     view,
	})
	if err != nil {
		return fmt.Errorf("plot: %s: %w", label, err)
	}
	return nil
}

func (w *Window) tessScale() tessellate.Scale {
	sx, sy := w.pixelScale()
	return tessellate.Scale{X: sx, Y: sy}
}

func toPoints(pts []Vec2) []tessellate.Point {
	out := make([]tessellate.Point, len(pts))
	for i, p := range pts {
		out[i] = tessellate.Point{X: p.X, Y: p.Y}
	}
	return out
}

// DrawLines draws line segments width device pixels wide. With strip set
// every point joins the next; otherwise points pair up as (p0, p1),
// (p2, p3), ... and an odd trailing point is ignored.
func (w *Window) DrawLines(points []Vec2, color int, width float32, strip bool) error {
	if w.closed {
		return ErrClosed
	}
	mode := tessellate.Lines
	if strip {
		mode = tessellate.Strip
	}
	return w.drawSolid("lines", tessellate.Segments(toPoints(points), mode, width, w.tessScale()), color)
}

// DrawPoints draws each point as a disc size device pixels across.
func (w *Window) DrawPoints(points []Vec2, color int, size float32) error {
	if w.closed {
		return ErrClosed
	}
	return w.drawSolid("points", tessellate.Points(toPoints(points), size, w.opts.pointSegments, w.tessScale()), color)
}

// DrawCircle draws a circle outline of radius r in logical units,
// approximated by segments straight lines.
func (w *Window) DrawCircle(center Vec2, r float32, color int, width float32, segments int) error {
	if w.closed {
		return ErrClosed
	}
	if segments < 3 {
		return fmt.Errorf("plot: draw circle: %w: %d segments", ErrInvalidSize, segments)
	}
	pts := tessellate.Circle(tessellate.Point{X: center.X, Y: center.Y}, r, segments)
	return w.drawSolid("circle", tessellate.Segments(pts, tessellate.Loop, width, w.tessScale()), color)
}

// DrawFunction plots y = f(x) across the visible width as a line strip,
// sampling f every few device pixels (4 unless set by WithFunctionStride).
// Features narrower than the stride may be missed. Samples where f is NaN
// or infinite are not drawn and break the line.
func (w *Window) DrawFunction(f func(x float32) float32, color int, width float32) error {
	if w.closed {
		return ErrClosed
	}
	left := w.screen.Left
	dx := w.screen.Width() / float32(w.fbW)
	stride := w.opts.functionStride
	pts := make([]tessellate.Point, 0, w.fbW/stride+1)
	for i := 0; i < w.fbW; i += stride {
		x := left + float32(i)*dx
		pts = append(pts, tessellate.Point{X: x, Y: f(x)})
	}
	return w.drawSolid("function", tessellate.Segments(pts, tessellate.Strip, width, w.tessScale()), color)
}

// DrawAxis draws a thin grid line at every integer coordinate of the
// visible rectangle and thick lines along x = 0 and y = 0.
func (w *Window) DrawAxis(thickColor, thinColor int, thick, thin float32) error {
	if w.closed {
		return ErrClosed
	}
	startX, maxX := int(w.screen.Left), int(w.screen.Right)
	startY, maxY := int(w.screen.Bottom), int(w.screen.Top)
	if startX > maxX {
		startX, maxX = maxX, startX
	}
	if startY > maxY {
		startY, maxY = maxY, startY
	}

	var grid []tessellate.Point
	for x := startX; x < maxX; x++ {
		grid = append(grid,
			tessellate.Point{X: float32(x), Y: float32(startY - 1)},
			tessellate.Point{X: float32(x), Y: float32(maxY + 1)})
	}
	for y := startY; y < maxY; y++ {
		grid = append(grid,
			tessellate.Point{X: float32(startX - 1), Y: float32(y)},
			tessellate.Point{X: float32(maxX + 1), Y: float32(y)})
	}
	s := w.tessScale()
	if err := w.drawSolid("axis_grid", tessellate.Segments(grid, tessellate.Lines, thin, s), thinColor); err != nil {
		return err
	}

	axes := []tessellate.Point{
		{X: float32(startX - 1), Y: 0}, {X: float32(maxX + 1), Y: 0},
		{X: 0, Y: float32(startY - 1)}, {X: 0, Y: float32(maxY + 1)},
	}
	return w.drawSolid("axis", tessellate.Segments(axes, tessellate.Lines, thick, s), thickColor)
}
