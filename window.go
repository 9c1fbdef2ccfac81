package plot

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/plot/backend"
	"github.com/gogpu/plot/gpucore"
	"github.com/gogpu/plot/shader"
)

// Window is an immediate-mode plotting window.
//
// Draw calls render into an offscreen surface the size of the framebuffer.
// Update composes that surface over the clear color, presents the result
// and polls input. A Window is not safe for concurrent use.
type Window struct {
	opts    options
	title   string
	width   int
	height  int
	palette Palette
	clear   RGBA

	host      Host
	device    gpucore.Device
	ownDevice bool
	ctx       *processContext

	fbW, fbH   int
	surface    gpucore.TextureID
	visible    gpucore.TextureID
	screenQuad gpucore.MeshID
	spriteQuad gpucore.MeshID
	blit       gpucore.ProgramID
	solid      gpucore.ProgramID

	screen         Rect
	screenSet      bool
	projection     Mat4
	quadProjection Mat4

	keys       keyState
	textures   map[string]*Texture
	owned      map[gpucore.TextureID]*Texture
	frame      *image.RGBA
	screenshot string

	shouldClose bool
	closed      bool
}

// NewWindow opens a window of the given size. palette is copied; clearColor
// indexes it and fills the frame behind every Update.
//
// The logical rectangle starts as the framebuffer in pixels, with the
// origin at the bottom-left corner.
func NewWindow(width, height int, title string, palette Palette, clearColor int, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: window %dx%d", ErrInvalidSize, width, height)
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	clearRGBA, err := palette.lookup(clearColor, o.paletteWrap)
	if err != nil {
		return nil, fmt.Errorf("plot: clear color: %w", err)
	}

	w := &Window{
		opts:     o,
		title:    title,
		width:    width,
		height:   height,
		palette:  append(Palette(nil), palette...),
		clear:    clearRGBA,
		keys:     newKeyState(),
		textures: make(map[string]*Texture),
		owned:    make(map[gpucore.TextureID]*Texture),
	}
	if err := w.init(); err != nil {
		w.release()
		return nil, err
	}
	ctx, err := acquireContext(w)
	if err != nil {
		w.release()
		return nil, err
	}
	w.ctx = ctx

	Logger().Info("plot: window opened",
		"title", title, "width", width, "height", height,
		"framebuffer", fmt.Sprintf("%dx%d", w.fbW, w.fbH), "device", w.device.Name())
	return w, nil
}

func (w *Window) init() error {
	w.host = w.opts.host
	if w.host == nil {
		w.host = NewHeadlessHost(w.width, w.height)
	}
	w.host.SetTitle(w.title)
	w.fbW, w.fbH = w.host.FramebufferSize()
	if w.fbW <= 0 || w.fbH <= 0 {
		return fmt.Errorf("%w: framebuffer %dx%d", ErrHostInit, w.fbW, w.fbH)
	}

	if err := w.openDevice(); err != nil {
		return err
	}
	propagateLogger(w.device, Logger())

	var err error
	target := func(label string) (gpucore.TextureID, error) {
		return w.device.CreateTexture(gpucore.TextureDesc{
			Label: label, Width: w.fbW, Height: w.fbH, RenderTarget: true,
		}, nil)
	}
	if w.surface, err = target("offscreen"); err != nil {
		return fmt.Errorf("%w: offscreen surface: %w", ErrDeviceInit, err)
	}
	if w.visible, err = target("visible"); err != nil {
		return fmt.Errorf("%w: visible target: %w", ErrDeviceInit, err)
	}
	hx, hy := float32(w.fbW)/2, float32(w.fbH)/2
	if w.screenQuad, err = w.device.CreateMesh("screen_quad", quadVertices(hx, hy)); err != nil {
		return fmt.Errorf("%w: screen quad: %w", ErrDeviceInit, err)
	}
	if w.spriteQuad, err = w.device.CreateMesh("sprite_quad", quadVertices(0.5, 0.5)); err != nil {
		return fmt.Errorf("%w: sprite quad: %w", ErrDeviceInit, err)
	}
	if w.blit, err = w.createProgram(shader.Blit()); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	if w.solid, err = w.createProgram(shader.Solid()); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}

	w.frame = image.NewRGBA(image.Rect(0, 0, w.fbW, w.fbH))
	if _, err := w.SetScreen(0, float32(w.fbW), 0, float32(w.fbH)); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	if err := w.device.Clear(w.surface, gpucore.Color{}); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	return nil
}

// openDevice resolves the device from the options, then the registry.
func (w *Window) openDevice() error {
	var err error
	switch {
	case w.opts.device != nil:
		w.device = w.opts.device
		return nil
	case w.opts.backend != "":
		w.device, err = backend.Open(w.opts.backend)
	default:
		w.device, err = backend.Default()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceInit, err)
	}
	w.ownDevice = true
	return nil
}

// createProgram hands a composed program to the device. Devices that take
// SPIR-V get caller programs precompiled so WGSL diagnostics surface here.
func (w *Window) createProgram(p *shader.Program) (gpucore.ProgramID, error) {
	desc := p.Desc()
	if sc, ok := w.device.(gpucore.SPIRVConsumer); ok && sc.AcceptsSPIRV() && desc.Custom {
		words, err := p.Compile()
		if err != nil {
			return gpucore.InvalidID, err
		}
		desc.SPIRV = words
	}
	id, err := w.device.CreateProgram(desc)
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("plot: program %q: %w", p.Label, err)
	}
	return id, nil
}

// Update presents the frame drawn since the previous Update and polls input.
//
// The offscreen surface is composed over the palette clear color, captured
// for a pending screenshot, presented and then cleared to transparent.
// Update returns ErrClosed once the window should stop: after a host close
// request, an escape key press or Close.
func (w *Window) Update() error {
	if w.closed || w.shouldClose {
		return ErrClosed
	}

	if err := w.compose(); err != nil {
		return err
	}
	if w.screenshot != "" {
		name := w.screenshot
		w.screenshot = ""
		if err := writeScreenshot(name, w.frame); err != nil {
			return err
		}
		Logger().Info("plot: screenshot written", "file", name)
	}
	if err := w.host.Present(w.frame); err != nil {
		return fmt.Errorf("plot: present: %w", err)
	}
	if err := w.device.Clear(w.surface, gpucore.Color{}); err != nil {
		return fmt.Errorf("plot: clear offscreen: %w", err)
	}

	events := w.host.PollEvents()
	for _, e := range events {
		switch {
		case e.Kind == EventCloseRequested:
			w.shouldClose = true
		case e.Kind == EventKeyDown && e.Key == KeyEscape && w.opts.escapeClose:
			w.shouldClose = true
		}
	}
	w.keys.advance(events)

	if w.shouldClose {
		return ErrClosed
	}
	return nil
}

// compose draws the offscreen surface over the clear color into the
// visible target and reads it back into w.frame.
func (w *Window) compose() error {
	bg := w.clear.float()
	bg.A = 1
	if err := w.device.Clear(w.visible, bg); err != nil {
		return fmt.Errorf("plot: clear visible: %w", err)
	}
	err := w.device.Draw(&gpucore.DrawCall{
		Label:   "compose",
		Target:  w.visible,
		Program: w.blit,
		Mesh:    w.screenQuad,
		Texture: w.surface,
		View:    w.screenView(),
	})
	if err != nil {
		return fmt.Errorf("plot: compose: %w", err)
	}
	pix, err := w.device.ReadPixels(w.visible)
	if err != nil {
		return fmt.Errorf("plot: read frame: %w", err)
	}
	copy(w.frame.Pix, pix)
	return nil
}

// Capture returns a copy of the last composed frame.
func (w *Window) Capture() *image.RGBA {
	img := image.NewRGBA(w.frame.Rect)
	copy(img.Pix, w.frame.Pix)
	return img
}

// Screenshot requests that the next Update writes the composed frame to
// filename as PNG.
func (w *Window) Screenshot(filename string) {
	w.screenshot = filename
}

// ShouldClose reports whether Update has stopped the window.
func (w *Window) ShouldClose() bool {
	return w.closed || w.shouldClose
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	if w.host != nil {
		w.host.SetTitle(title)
	}
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Size returns the requested window size.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// FramebufferSize returns the drawable size in device pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.fbW, w.fbH
}

// Device returns the draw device.
func (w *Window) Device() gpucore.Device {
	return w.device
}

// PlaySound plays a sound file on the window's audio engine.
func (w *Window) PlaySound(filename string) error {
	if w.closed {
		return ErrClosed
	}
	a := w.opts.audio
	if a == nil {
		a = w.ctx.audio
	}
	if err := a.Play(filename); err != nil {
		return fmt.Errorf("%w: %w", ErrSound, err)
	}
	return nil
}

// Close releases every device object the window created, the host and its
// share of the process context. Close is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	err := w.release()
	if w.ctx != nil {
		err = errors.Join(err, w.ctx.release(w))
		w.ctx = nil
	}
	Logger().Info("plot: window closed", "title", w.title)
	return err
}

// release destroys device objects and closes the host. It tolerates a
// partially initialized window.
func (w *Window) release() error {
	w.closed = true
	if d := w.device; d != nil {
		for _, t := range w.textures {
			d.DestroyTexture(t.id)
		}
		for id := range w.owned {
			d.DestroyTexture(id)
		}
		d.DestroyProgram(w.solid)
		d.DestroyProgram(w.blit)
		d.DestroyMesh(w.spriteQuad)
		d.DestroyMesh(w.screenQuad)
		d.DestroyTexture(w.visible)
		d.DestroyTexture(w.surface)
		if w.ownDevice {
			d.Destroy()
		}
	}
	clear(w.textures)
	clear(w.owned)

	var err error
	if w.host != nil {
		if cerr := w.host.Close(); cerr != nil {
			err = fmt.Errorf("plot: close host: %w", cerr)
		}
	}
	return err
}
