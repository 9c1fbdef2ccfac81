package plot

import (
	"fmt"
	"sync"

	"github.com/gogpu/plot/audio"
)

// Audio plays sound files for a window.
type Audio interface {
	// Play starts playing a sound file and returns without waiting for it.
	Play(filename string) error

	// Close stops playback and releases the output device.
	Close() error
}

// newAudio creates the shared audio engine. Tests replace it.
var newAudio = func() (Audio, error) {
	return audio.NewSpeaker()
}

// processContext holds the state shared by every open window. The first
// window creates it and the last Close destroys it.
type processContext struct {
	refs    int
	audio   Audio
	windows map[*Window]struct{}
}

var (
	ctxMu   sync.Mutex
	procCtx *processContext
)

// acquireContext registers w with the process context, creating the
// context if w is the first window.
func acquireContext(w *Window) (*processContext, error) {
	ctxMu.Lock()
	defer ctxMu.Unlock()

	if procCtx == nil {
		a, err := newAudio()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAudioInit, err)
		}
		propagateLogger(a, Logger())
		procCtx = &processContext{audio: a, windows: make(map[*Window]struct{})}
		Logger().Debug("plot: process context created")
	}
	procCtx.refs++
	procCtx.windows[w] = struct{}{}
	return procCtx, nil
}

// release unregisters w. The last release closes the shared audio engine.
func (c *processContext) release(w *Window) error {
	ctxMu.Lock()
	defer ctxMu.Unlock()

	if _, ok := c.windows[w]; !ok {
		return nil
	}
	delete(c.windows, w)
	c.refs--
	if c.refs > 0 {
		return nil
	}
	if procCtx == c {
		procCtx = nil
	}
	Logger().Debug("plot: process context destroyed")
	return c.audio.Close()
}

// liveCollaborators returns the devices and audio engines of open windows.
func liveCollaborators() []any {
	ctxMu.Lock()
	defer ctxMu.Unlock()
	if procCtx == nil {
		return nil
	}
	out := []any{procCtx.audio}
	for w := range procCtx.windows {
		if w.device != nil {
			out = append(out, w.device)
		}
		if w.opts.audio != nil {
			out = append(out, w.opts.audio)
		}
	}
	return out
}

// openWindows returns the number of windows holding the process context.
func openWindows() int {
	ctxMu.Lock()
	defer ctxMu.Unlock()
	if procCtx == nil {
		return 0
	}
	return procCtx.refs
}
