// Package bridge hands frames and input between the goroutine driving a
// plot window and a host's main-thread event loop.
package bridge

import "sync"

// Queue is an unbounded FIFO safe for one producer and one consumer.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends items.
func (q *Queue[T]) Push(items ...T) {
	q.mu.Lock()
	q.items = append(q.items, items...)
	q.mu.Unlock()
}

// Drain removes and returns everything queued, oldest first.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

// Frame is a snapshot of RGBA pixels.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
	Seq    uint64
}

// Mailbox keeps only the newest frame. Older frames that were never taken
// are overwritten.
type Mailbox struct {
	mu    sync.Mutex
	frame Frame
}

// Put copies pix into the mailbox and returns the new sequence number.
func (m *Mailbox) Put(pix []byte, width, height int) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cap(m.frame.Pix) < len(pix) {
		m.frame.Pix = make([]byte, len(pix))
	}
	m.frame.Pix = m.frame.Pix[:len(pix)]
	copy(m.frame.Pix, pix)
	m.frame.Width = width
	m.frame.Height = height
	m.frame.Seq++
	return m.frame.Seq
}

// Take returns a copy of the newest frame if its sequence number is
// greater than after.
func (m *Mailbox) Take(after uint64) (Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.frame.Seq <= after {
		return Frame{}, false
	}
	f := m.frame
	f.Pix = append([]byte(nil), m.frame.Pix...)
	return f, true
}

// Latch is a one-shot flag. Done is closed on the first Set.
type Latch struct {
	once sync.Once
	ch   chan struct{}
	init sync.Once
}

func (l *Latch) lazy() {
	l.init.Do(func() { l.ch = make(chan struct{}) })
}

// Set trips the latch. Later calls do nothing.
func (l *Latch) Set() {
	l.lazy()
	l.once.Do(func() { close(l.ch) })
}

// Done returns a channel closed once Set is called.
func (l *Latch) Done() <-chan struct{} {
	l.lazy()
	return l.ch
}

// IsSet reports whether Set was called.
func (l *Latch) IsSet() bool {
	select {
	case <-l.Done():
		return true
	default:
		return false
	}
}
