package plot

import "errors"

// Initialization errors. A window that fails with one of these is not usable.
var (
	// ErrHostInit is returned when the windowing host cannot be opened.
	ErrHostInit = errors.New("plot: host initialization failed")

	// ErrDeviceInit is returned when no draw device can be opened or the
	// window's device objects cannot be created.
	ErrDeviceInit = errors.New("plot: device initialization failed")

	// ErrAudioInit is returned when the audio engine cannot be started.
	ErrAudioInit = errors.New("plot: audio initialization failed")

	// ErrSound is returned when a sound cannot be played.
	ErrSound = errors.New("plot: sound playback failed")
)

// Contract violations. These report caller bugs and are never retried.
var (
	// ErrPaletteIndex is returned for a color index outside the palette.
	ErrPaletteIndex = errors.New("plot: palette index out of range")

	// ErrEmptyPalette is returned when a window is created without colors.
	ErrEmptyPalette = errors.New("plot: empty palette")

	// ErrEmptyGrid is returned when a pixel grid has no rows or columns.
	ErrEmptyGrid = errors.New("plot: empty pixel grid")

	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("plot: grid rows differ in length")

	// ErrBufferSize is returned when a raw pixel buffer does not match its
	// declared dimensions.
	ErrBufferSize = errors.New("plot: pixel buffer size mismatch")

	// ErrInvalidSize is returned for non-positive dimensions or counts.
	ErrInvalidSize = errors.New("plot: invalid size")

	// ErrTransform is returned for a sprite transform that is not 3x3 or 4x4.
	ErrTransform = errors.New("plot: transform must be 3x3 or 4x4")

	// ErrInvalidScreen is returned for a logical rectangle with zero width
	// or height.
	ErrInvalidScreen = errors.New("plot: degenerate screen rectangle")
)

var (
	// ErrTextureLoad is returned with a nil texture when an image file
	// cannot be read or decoded. The window stays usable.
	ErrTextureLoad = errors.New("plot: texture load failed")

	// ErrClosed is returned by Update once the window should stop, and by
	// every drawing call after Close.
	ErrClosed = errors.New("plot: window closed")
)
