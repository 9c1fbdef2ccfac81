package bridge

import (
	"sync"
	"testing"
)

func TestQueueDrain(t *testing.T) {
	var q Queue[int]
	if got := q.Drain(); len(got) != 0 {
		t.Fatalf("Drain() on empty queue = %v", got)
	}
	q.Push(1, 2)
	q.Push(3)
	got := q.Drain()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Drain() = %v, want [1 2 3]", got)
	}
	if got := q.Drain(); len(got) != 0 {
		t.Errorf("second Drain() = %v, want empty", got)
	}
}

func TestQueueConcurrent(t *testing.T) {
	var q Queue[int]
	const n = 1000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(i)
		}
	}()
	seen := 0
	for seen < n {
		for i, v := range q.Drain() {
			if v != seen {
				t.Fatalf("item %d = %d, want %d", i, v, seen)
			}
			seen++
		}
	}
	wg.Wait()
}

func TestMailboxKeepsNewest(t *testing.T) {
	var m Mailbox
	if _, ok := m.Take(0); ok {
		t.Fatal("Take() on empty mailbox succeeded")
	}

	pix := []byte{1, 2, 3, 4}
	s1 := m.Put(pix, 1, 1)
	pix[0] = 9
	s2 := m.Put(pix, 1, 1)
	if s2 != s1+1 {
		t.Fatalf("sequence %d after %d", s2, s1)
	}

	f, ok := m.Take(0)
	if !ok {
		t.Fatal("Take(0) failed")
	}
	if f.Seq != s2 || f.Pix[0] != 9 || f.Width != 1 || f.Height != 1 {
		t.Errorf("Take(0) = %+v", f)
	}
	if _, ok := m.Take(s2); ok {
		t.Error("Take(latest) returned a frame")
	}

	// Put copies its input and Take copies its output.
	pix[0] = 7
	f.Pix[1] = 0
	again, _ := m.Take(0)
	if again.Pix[0] != 9 || again.Pix[1] != 2 {
		t.Errorf("mailbox aliased caller buffers: %v", again.Pix)
	}
}

func TestLatch(t *testing.T) {
	var l Latch
	if l.IsSet() {
		t.Fatal("new latch is set")
	}
	l.Set()
	l.Set()
	if !l.IsSet() {
		t.Fatal("latch not set after Set")
	}
	select {
	case <-l.Done():
	default:
		t.Error("Done not closed")
	}
}
