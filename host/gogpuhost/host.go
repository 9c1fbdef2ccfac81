//go:build !nogpu

// Package gogpuhost shows plot windows in a native gogpu window.
//
// The gogpu event loop owns the main thread, so Run takes over the calling
// goroutine and runs the drawing function on another one:
//
//	func main() {
//		err := gogpuhost.Run(gogpuhost.Config{Title: "plot", Width: 800, Height: 600},
//			func(h plot.Host) error {
//				w, err := plot.NewWindow(800, 600, "plot", palette, 0, plot.WithHost(h))
//				if err != nil {
//					return err
//				}
//				defer w.Close()
//				for w.Update() == nil {
//					// draw
//				}
//				return nil
//			})
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
package gogpuhost

import (
	"errors"
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/bridge"
)

// ErrInvalidConfig is returned by Run for a non-positive window size.
var ErrInvalidConfig = errors.New("gogpuhost: invalid config")

// Config describes the native window.
type Config struct {
	Title  string
	Width  int
	Height int
}

type keyReleaser interface {
	OnKeyRelease(func(gpucontext.Key, gpucontext.Modifiers))
}

type titleSetter interface {
	SetTitle(string)
}

type textureDestroyer interface {
	Destroy()
}

// presenter uploads frames from the link into a single texture and draws
// it every frame.
type presenter struct {
	link    *bridge.Link
	seq     uint64
	texture any
	width   int
	height  int
}

// Run opens the window, calls fn with a host bound to it on a new
// goroutine and runs the event loop until fn returns or the host is
// closed. It must be called from the main goroutine.
func Run(cfg Config, fn func(h plot.Host) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))

	src := app.EventSource()
	rel, hasRelease := any(src).(keyReleaser)
	link := bridge.NewLink(cfg.Width, cfg.Height, !hasRelease)
	p := &presenter{link: link}

	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		link.KeyDown(mapKey(key))
	})
	if hasRelease {
		rel.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
			link.KeyUp(mapKey(key))
		})
	}

	app.OnDraw(func(dc *gogpu.Context) {
		if link.Finished() {
			p.destroy()
			app.Quit()
			return
		}
		if title, ok := link.TakeTitle(); ok {
			if ts, ok := any(app).(titleSetter); ok {
				ts.SetTitle(title)
			}
		}
		if err := p.draw(dc.AsTextureDrawer()); err != nil {
			plot.Logger().Warn("gogpuhost: draw failed", "err", err)
		}
	})

	app.OnClose(func() {
		link.RequestClose()
		link.Shutdown()
		p.destroy()
	})

	result := make(chan error, 1)
	go func() {
		defer link.Finish()
		result <- fn(link)
	}()

	runErr := app.Run()
	link.Shutdown()
	return errors.Join(runErr, <-result)
}

func (p *presenter) draw(dc gpucontext.TextureDrawer) error {
	if f, ok := p.link.NextFrame(p.seq); ok {
		p.seq = f.Seq
		err := p.upload(dc, f)
		p.link.Shown()
		if err != nil {
			return err
		}
	}
	if p.texture == nil {
		return nil
	}
	tex, ok := p.texture.(gpucontext.Texture)
	if !ok {
		return errors.New("gogpuhost: texture is not drawable")
	}
	return dc.DrawTexture(tex, 0, 0)
}

func (p *presenter) upload(dc gpucontext.TextureDrawer, f bridge.Frame) error {
	if p.texture != nil && p.width == f.Width && p.height == f.Height {
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			return updater.UpdateData(f.Pix)
		}
	}

	creator := dc.TextureCreator()
	if creator == nil {
		return errors.New("gogpuhost: no texture creator")
	}
	tex, err := creator.NewTextureFromRGBA(f.Width, f.Height, f.Pix)
	if err != nil {
		return fmt.Errorf("gogpuhost: create texture: %w", err)
	}
	p.destroy()
	p.texture = tex
	p.width, p.height = f.Width, f.Height
	return nil
}

func (p *presenter) destroy() {
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
}
