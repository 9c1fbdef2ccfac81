package bridge

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/plot"
)

// Link is the window-goroutine half of a main-thread host. It implements
// plot.Host; the event loop drives the other half through KeyDown, KeyUp,
// RequestClose, NextFrame and Shown.
type Link struct {
	width  int
	height int

	frames Mailbox
	events Queue[plot.Event]
	title  atomic.Pointer[string]
	shown  chan struct{}

	// closed trips when the event loop ends or the user closes the window.
	closed Latch
	// done trips when the window side is finished with the host.
	done Latch

	// autoRelease synthesizes a KeyUp one poll after every KeyDown for
	// loops that only report presses.
	autoRelease bool
	mu          sync.Mutex
	pendingUp   []plot.Event
}

// NewLink creates a link for a framebuffer of the given size.
func NewLink(width, height int, autoRelease bool) *Link {
	return &Link{
		width:       width,
		height:      height,
		shown:       make(chan struct{}, 1),
		autoRelease: autoRelease,
	}
}

// FramebufferSize implements plot.Host.
func (l *Link) FramebufferSize() (int, int) {
	return l.width, l.height
}

// PollEvents implements plot.Host.
func (l *Link) PollEvents() []plot.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev := l.pendingUp
	l.pendingUp = nil
	for _, e := range l.events.Drain() {
		ev = append(ev, e)
		if l.autoRelease && e.Kind == plot.EventKeyDown {
			l.pendingUp = append(l.pendingUp, plot.Event{Kind: plot.EventKeyUp, Key: e.Key})
		}
	}
	return ev
}

// Present implements plot.Host. It blocks until the event loop has shown
// the frame or the link is closed.
func (l *Link) Present(frame *image.RGBA) error {
	if l.closed.IsSet() {
		return nil
	}
	b := frame.Bounds()
	l.frames.Put(frame.Pix, b.Dx(), b.Dy())
	select {
	case <-l.shown:
	case <-l.closed.Done():
	}
	return nil
}

// SetTitle implements plot.Host.
func (l *Link) SetTitle(title string) {
	l.title.Store(&title)
}

// Close implements plot.Host. The event loop exits on its next frame.
func (l *Link) Close() error {
	l.done.Set()
	return nil
}

// KeyDown queues a key press.
func (l *Link) KeyDown(k plot.Key) {
	if k == plot.KeyUnknown {
		return
	}
	l.events.Push(plot.Event{Kind: plot.EventKeyDown, Key: k})
}

// KeyUp queues a key release.
func (l *Link) KeyUp(k plot.Key) {
	if k == plot.KeyUnknown {
		return
	}
	l.events.Push(plot.Event{Kind: plot.EventKeyUp, Key: k})
}

// RequestClose reports a close request from the user.
func (l *Link) RequestClose() {
	l.events.Push(plot.Event{Kind: plot.EventCloseRequested})
}

// NextFrame returns the newest frame presented after sequence number seq.
func (l *Link) NextFrame(seq uint64) (Frame, bool) {
	return l.frames.Take(seq)
}

// Shown releases a Present waiting on the frame just drawn.
func (l *Link) Shown() {
	select {
	case l.shown <- struct{}{}:
	default:
	}
}

// TakeTitle returns a title set since the previous call.
func (l *Link) TakeTitle() (string, bool) {
	t := l.title.Swap(nil)
	if t == nil {
		return "", false
	}
	return *t, true
}

// Finish marks the window side as done.
func (l *Link) Finish() { l.done.Set() }

// Finished reports whether the event loop should exit.
func (l *Link) Finished() bool { return l.done.IsSet() }

// Shutdown unblocks the window side once the event loop has ended.
func (l *Link) Shutdown() { l.closed.Set() }
