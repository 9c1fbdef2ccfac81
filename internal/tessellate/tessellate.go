// Package tessellate expands plot primitives into triangle lists.
//
// Widths and point sizes are given in device pixels while geometry stays in
// logical coordinates; a [Scale] converts between the two so that a line is
// equally thick on both axes of a non-square viewport.
package tessellate

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/plot/gpucore"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float32
}

// Scale is the number of device pixels per logical unit on each axis.
type Scale struct {
	X, Y float32
}

// Mode selects how consecutive points are joined.
type Mode uint8

// Segment modes.
const (
	// Lines joins pairs of points: (p0,p1), (p2,p3), ...
	Lines Mode = iota
	// Strip joins every point to the next.
	Strip
	// Loop is Strip plus a closing segment back to the first point.
	Loop
)

// Segments expands line segments of the given pixel width into triangles.
// Zero-length segments and segments touching a NaN or infinite point are
// skipped, so such a point breaks a Strip. Widths below one pixel draw one
// pixel wide.
func Segments(pts []Point, mode Mode, width float32, s Scale) []gpucore.Vertex {
	if len(pts) < 2 || s.X <= 0 || s.Y <= 0 {
		return nil
	}
	hw := math32.Max(width, 1) / 2

	var out []gpucore.Vertex
	switch mode {
	case Lines:
		out = make([]gpucore.Vertex, 0, len(pts)/2*6)
		for i := 0; i+1 < len(pts); i += 2 {
			out = appendSegment(out, pts[i], pts[i+1], hw, s)
		}
	case Strip, Loop:
		out = make([]gpucore.Vertex, 0, len(pts)*6)
		for i := 0; i+1 < len(pts); i++ {
			out = appendSegment(out, pts[i], pts[i+1], hw, s)
		}
		if mode == Loop && len(pts) > 2 {
			out = appendSegment(out, pts[len(pts)-1], pts[0], hw, s)
		}
	}
	return out
}

// appendSegment emits two triangles covering a-b extruded by hw pixels.
func appendSegment(out []gpucore.Vertex, a, b Point, hw float32, s Scale) []gpucore.Vertex {
	if !a.finite() || !b.finite() {
		return out
	}
	dx := (b.X - a.X) * s.X
	dy := (b.Y - a.Y) * s.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return out
	}
	// Pixel-space normal converted back to logical units.
	ox := -dy / l * hw / s.X
	oy := dx / l * hw / s.Y

	a0 := gpucore.Vertex{X: a.X + ox, Y: a.Y + oy}
	a1 := gpucore.Vertex{X: a.X - ox, Y: a.Y - oy}
	b0 := gpucore.Vertex{X: b.X + ox, Y: b.Y + oy}
	b1 := gpucore.Vertex{X: b.X - ox, Y: b.Y - oy}
	return append(out, a0, a1, b0, b0, a1, b1)
}

// Points expands each point into a filled disc of the given pixel diameter,
// approximated by a fan of segments triangles (minimum 3). NaN or infinite
// points are dropped.
func Points(pts []Point, size float32, segments int, s Scale) []gpucore.Vertex {
	if len(pts) == 0 || s.X <= 0 || s.Y <= 0 {
		return nil
	}
	if segments < 3 {
		segments = 3
	}
	r := math32.Max(size, 1) / 2
	rx, ry := r/s.X, r/s.Y

	// Unit circle shared by every point.
	ring := make([]Point, segments)
	for i := range ring {
		theta := 2 * math32.Pi * float32(i) / float32(segments)
		ring[i] = Point{X: math32.Cos(theta) * rx, Y: math32.Sin(theta) * ry}
	}

	out := make([]gpucore.Vertex, 0, len(pts)*segments*3)
	for _, p := range pts {
		if !p.finite() {
			continue
		}
		c := gpucore.Vertex{X: p.X, Y: p.Y}
		for i := range ring {
			n := ring[(i+1)%segments]
			out = append(out, c,
				gpucore.Vertex{X: p.X + ring[i].X, Y: p.Y + ring[i].Y},
				gpucore.Vertex{X: p.X + n.X, Y: p.Y + n.Y},
			)
		}
	}
	return out
}

func (p Point) finite() bool {
	return !math32.IsNaN(p.X) && !math32.IsNaN(p.Y) && !math32.IsInf(p.X, 0) && !math32.IsInf(p.Y, 0)
}

// Circle returns n points on a circle of radius r around c, starting at
// angle zero and running counter-clockwise. Join them with [Loop].
func Circle(c Point, r float32, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = Point{X: c.X + r*math32.Cos(theta), Y: c.Y + r*math32.Sin(theta)}
	}
	return pts
}
