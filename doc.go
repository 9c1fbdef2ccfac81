// Package plot provides a small immediate-mode plotting window for Go.
//
// # Overview
//
// A [Window] owns a palette, a logical coordinate rectangle, an offscreen
// draw surface and a key-state snapshot. Every draw call renders into the
// offscreen surface; [Window.Update] composes the surface onto the visible
// frame, presents it through a [Host] and polls input.
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	palette := plot.Palette{plot.Black, plot.White}
//	w, err := plot.NewWindow(640, 480, "sine", palette, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	w.SetScreen(-4, 4, -3, 3)
//	for {
//	    w.DrawAxis(1, 1, 2, 1)
//	    w.DrawFunction(func(x float32) float32 { return math32.Sin(x) }, 1, 2)
//	    if err := w.Update(); err != nil {
//	        break
//	    }
//	}
//
// # Coordinate System
//
// Callers draw in a logical rectangle set with [Window.SetScreen]:
//   - x grows from left to right
//   - y grows from bottom to top
//   - the rectangle always spans the whole window
//
// Line widths and point sizes are given in device pixels.
//
// # Colors
//
// Grid-based draw calls and primitives reference colors by palette index.
// An index outside the palette is a contract violation reported as
// [ErrPaletteIndex], unless the window was created with [WithPaletteWrap].
//
// # Shaders
//
// [Window.DrawSprite] and [Window.Shade] accept WGSL fragment code composed
// by package shader. Caller constants become uniforms typed by their length.
//
// # Devices and Hosts
//
// Drawing goes through a [gpucore.Device]. By default the highest priority
// device registered in package backend is used; import
// github.com/gogpu/plot/backend/native for the wgpu device. Presenting and
// input go through a [Host]; the default [HeadlessHost] keeps the last
// frame in memory.
package plot
