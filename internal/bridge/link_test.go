package bridge

import (
	"image"
	"testing"
	"time"

	"github.com/gogpu/plot"
)

var _ plot.Host = (*Link)(nil)

func TestLinkEvents(t *testing.T) {
	l := NewLink(10, 20, false)
	if w, h := l.FramebufferSize(); w != 10 || h != 20 {
		t.Fatalf("FramebufferSize() = %d, %d", w, h)
	}

	l.KeyDown(plot.KeyA)
	l.KeyDown(plot.KeyUnknown)
	l.KeyUp(plot.KeyA)
	l.RequestClose()

	got := l.PollEvents()
	want := []plot.Event{
		{Kind: plot.EventKeyDown, Key: plot.KeyA},
		{Kind: plot.EventKeyUp, Key: plot.KeyA},
		{Kind: plot.EventCloseRequested},
	}
	if len(got) != len(want) {
		t.Fatalf("PollEvents() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinkAutoRelease(t *testing.T) {
	l := NewLink(1, 1, true)
	l.KeyDown(plot.KeySpace)

	first := l.PollEvents()
	if len(first) != 1 || first[0].Kind != plot.EventKeyDown {
		t.Fatalf("first poll = %v", first)
	}
	second := l.PollEvents()
	if len(second) != 1 || second[0] != (plot.Event{Kind: plot.EventKeyUp, Key: plot.KeySpace}) {
		t.Fatalf("second poll = %v", second)
	}
	if third := l.PollEvents(); len(third) != 0 {
		t.Errorf("third poll = %v", third)
	}
}

func TestLinkPresentWaitsForShown(t *testing.T) {
	l := NewLink(2, 1, false)
	frame := image.NewRGBA(image.Rect(0, 0, 2, 1))
	frame.Pix[0] = 0xAB

	returned := make(chan struct{})
	go func() {
		_ = l.Present(frame)
		close(returned)
	}()

	var f Frame
	deadline := time.After(time.Second)
	for {
		var ok bool
		if f, ok = l.NextFrame(0); ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("frame never arrived")
		case <-time.After(time.Millisecond):
		}
	}
	if f.Width != 2 || f.Height != 1 || f.Pix[0] != 0xAB {
		t.Errorf("NextFrame = %+v", f)
	}

	select {
	case <-returned:
		t.Fatal("Present returned before Shown")
	case <-time.After(10 * time.Millisecond):
	}
	l.Shown()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Present still blocked after Shown")
	}
}

func TestLinkShutdownUnblocksPresent(t *testing.T) {
	l := NewLink(1, 1, false)
	l.Shutdown()
	if err := l.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("Present() after Shutdown = %v", err)
	}
}

func TestLinkTitleAndClose(t *testing.T) {
	l := NewLink(1, 1, false)
	if _, ok := l.TakeTitle(); ok {
		t.Fatal("TakeTitle() on fresh link succeeded")
	}
	l.SetTitle("a")
	l.SetTitle("b")
	if got, ok := l.TakeTitle(); !ok || got != "b" {
		t.Errorf("TakeTitle() = %q, %v", got, ok)
	}
	if _, ok := l.TakeTitle(); ok {
		t.Error("title taken twice")
	}

	if l.Finished() {
		t.Fatal("Finished before Close")
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if !l.Finished() {
		t.Error("Close did not finish the link")
	}
}
