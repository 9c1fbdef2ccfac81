package plot

import (
	"fmt"

	"github.com/gogpu/plot/gpucore"
	"github.com/gogpu/plot/shader"
)

// DrawSprite draws a palette grid on the unit quad [-0.5, 0.5]² placed in
// logical space by transform. An empty grid draws a 1x1 opaque white
// texture, so body alone decides the sprite's color.
//
// body is WGSL run after the texel is sampled into color; globals is
// emitted at module scope; each constant becomes a uniform named after it.
// Pass "" and nil for a plain textured quad.
func (w *Window) DrawSprite(transform Transform, pixels Grid, constants []shader.Constant, body, globals string) error {
	if w.closed {
		return ErrClosed
	}
	width, height, rgba := 1, 1, []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if len(pixels) > 0 && len(pixels[0]) > 0 {
		var err error
		if width, height, rgba, err = w.gridPixels(pixels); err != nil {
			return fmt.Errorf("plot: draw sprite: %w", err)
		}
	}

	tex, err := w.device.CreateTexture(gpucore.TextureDesc{Label: "sprite", Width: width, Height: height}, rgba)
	if err != nil {
		return fmt.Errorf("plot: draw sprite: %w", err)
	}
	defer w.device.DestroyTexture(tex)
	return w.drawTextured("sprite", transform, tex, constants, body, globals)
}

// DrawTexture draws t like DrawSprite draws a grid.
func (w *Window) DrawTexture(transform Transform, t *Texture, constants []shader.Constant, body, globals string) error {
	if w.closed {
		return ErrClosed
	}
	if t == nil {
		return fmt.Errorf("plot: draw texture: %w", gpucore.ErrInvalidTexture)
	}
	return w.drawTextured("texture", transform, t.id, constants, body, globals)
}

func (w *Window) drawTextured(label string, transform Transform, tex gpucore.TextureID, constants []shader.Constant, body, globals string) error {
	model, err := transform.Mat4()
	if err != nil {
		return fmt.Errorf("plot: draw %s: %w", label, err)
	}
	p, err := shader.Composite(label, body, globals, constants)
	if err != nil {
		return fmt.Errorf("plot: draw %s: %w", label, err)
	}
	return w.runProgram(p, &gpucore.DrawCall{
		Label:   label,
		Target:  w.surface,
		Mesh:    w.spriteQuad,
		Texture: tex,
		View:    w.logicalView(model),
	})
}

// Shade runs body over every pixel of the window as a post-process.
//
// body reads the logical coordinates x and y (plus clip z and w), and the
// rectangle through view.leftBottom, view.rightTop, view.min, view.max and
// view.size; it writes color. The result is blended over what was drawn so
// far this frame.
func (w *Window) Shade(constants []shader.Constant, body, globals string) error {
	if w.closed {
		return ErrClosed
	}
	p, err := shader.Shade("shade", body, globals, constants)
	if err != nil {
		return fmt.Errorf("plot: shade: %w", err)
	}
	return w.runProgram(p, &gpucore.DrawCall{
		Label:  "shade",
		Target: w.surface,
		Mesh:   w.screenQuad,
		View:   w.screenView(),
	})
}

// runProgram builds a per-call program, draws with it and destroys it.
func (w *Window) runProgram(p *shader.Program, call *gpucore.DrawCall) error {
	id, err := w.createProgram(p)
	if err != nil {
		return fmt.Errorf("plot: draw %s: %w", call.Label, err)
	}
	defer w.device.DestroyProgram(id)

	call.Program = id
	call.Constants = p.Payloads()
	if err := w.device.Draw(call); err != nil {
		return fmt.Errorf("plot: draw %s: %w", call.Label, err)
	}
	Logger().Debug("plot: program drawn", "label", call.Label, "constants", len(p.Constants))
	return nil
}
