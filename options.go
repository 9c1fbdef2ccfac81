package plot

import "github.com/gogpu/plot/gpucore"

// Option configures a Window during creation.
//
// Example:
//
//	// Headless window on the software device
//	w, err := plot.NewWindow(320, 240, "test", palette, 0,
//	    plot.WithBackend(backend.Software))
//
//	// Shared device and an interactive host
//	w, err := plot.NewWindow(800, 600, "demo", palette, 0,
//	    plot.WithDevice(dev), plot.WithHost(h))
type Option func(*options)

// options holds optional configuration for Window creation.
type options struct {
	host           Host
	device         gpucore.Device
	backend        string
	audio          Audio
	paletteWrap    bool
	escapeClose    bool
	functionStride int
	pointSegments  int
}

// defaultOptions returns the default window options.
func defaultOptions() options {
	return options{
		host:           nil, // headless host of the window size
		device:         nil, // backend.Default
		escapeClose:    true,
		functionStride: 4,
		pointSegments:  12,
	}
}

// WithHost sets the windowing host that presents frames and delivers input.
// The window closes the host on Close.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithDevice sets the draw device. The caller keeps ownership: Close
// releases the window's resources on it but does not destroy it.
func WithDevice(d gpucore.Device) Option {
	return func(o *options) {
		o.device = d
	}
}

// WithBackend opens the named registered device instead of the default
// priority order.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithAudio replaces the shared audio engine for this window.
// The caller keeps ownership.
func WithAudio(a Audio) Option {
	return func(o *options) {
		o.audio = a
	}
}

// WithPaletteWrap makes out-of-range palette indices wrap modulo the palette
// length instead of failing with ErrPaletteIndex.
func WithPaletteWrap() Option {
	return func(o *options) {
		o.paletteWrap = true
	}
}

// WithEscapeClose controls whether the escape key requests close.
// Enabled by default.
func WithEscapeClose(enabled bool) Option {
	return func(o *options) {
		o.escapeClose = enabled
	}
}

// WithFunctionStride sets the device pixel step DrawFunction samples at.
// Values below one are ignored.
func WithFunctionStride(pixels int) Option {
	return func(o *options) {
		if pixels > 0 {
			o.functionStride = pixels
		}
	}
}

// WithPointSegments sets how many triangles approximate each point drawn
// by DrawPoints. Values below three are ignored.
func WithPointSegments(n int) Option {
	return func(o *options) {
		if n >= 3 {
			o.pointSegments = n
		}
	}
}
