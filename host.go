package plot

import (
	"image"
	"sync"
)

// Host is the windowing and input side of a Window.
//
// A window calls PollEvents and Present once per Update from the goroutine
// that drives it. Implementations that need the main thread hand work over
// internally.
type Host interface {
	// FramebufferSize returns the drawable size in device pixels.
	FramebufferSize() (width, height int)

	// PollEvents returns the events received since the previous call,
	// oldest first.
	PollEvents() []Event

	// Present shows a composed frame. The image is reused by the window
	// after Present returns; hosts that keep it must copy.
	Present(frame *image.RGBA) error

	// SetTitle changes the window title.
	SetTitle(title string)

	// Close releases the host.
	Close() error
}

// EventKind identifies a host event.
type EventKind uint8

// Event kinds.
const (
	EventKeyDown EventKind = iota + 1
	EventKeyUp
	EventCloseRequested
)

// Event is a single input or window event.
type Event struct {
	Kind EventKind
	Key  Key
}

// HeadlessHost is an in-memory host. It keeps a copy of the last presented
// frame and replays injected events.
type HeadlessHost struct {
	mu     sync.Mutex
	width  int
	height int
	title  string
	events []Event
	frame  *image.RGBA
	frames int
	closed bool
}

// NewHeadlessHost creates a headless host with the given framebuffer size.
func NewHeadlessHost(width, height int) *HeadlessHost {
	return &HeadlessHost{width: width, height: height}
}

// FramebufferSize returns the configured size.
func (h *HeadlessHost) FramebufferSize() (int, int) {
	return h.width, h.height
}

// Inject queues an event for the next PollEvents.
func (h *HeadlessHost) Inject(events ...Event) {
	h.mu.Lock()
	h.events = append(h.events, events...)
	h.mu.Unlock()
}

// PollEvents drains the injected events.
func (h *HeadlessHost) PollEvents() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	ev := h.events
	h.events = nil
	return ev
}

// Present copies the frame.
func (h *HeadlessHost) Present(frame *image.RGBA) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.frame == nil || h.frame.Bounds() != frame.Bounds() {
		h.frame = image.NewRGBA(frame.Bounds())
	}
	copy(h.frame.Pix, frame.Pix)
	h.frames++
	return nil
}

// Frame returns the last presented frame, or nil before the first Present.
func (h *HeadlessHost) Frame() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frame
}

// Frames returns how many frames were presented.
func (h *HeadlessHost) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// SetTitle records the title.
func (h *HeadlessHost) SetTitle(title string) {
	h.mu.Lock()
	h.title = title
	h.mu.Unlock()
}

// Title returns the last title set.
func (h *HeadlessHost) Title() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.title
}

// Close marks the host closed.
func (h *HeadlessHost) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}

// Closed reports whether Close was called.
func (h *HeadlessHost) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
