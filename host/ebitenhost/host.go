// Package ebitenhost shows plot windows through Ebitengine.
//
// Ebitengine runs its game loop on the main thread. Run takes over the
// calling goroutine and runs the drawing function on another one, handing
// frames and key events across a bridge.
package ebitenhost

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/bridge"
)

// ErrInvalidConfig is returned by Run for a non-positive window size.
var ErrInvalidConfig = errors.New("ebitenhost: invalid config")

// Config describes the window.
type Config struct {
	Title  string
	Width  int
	Height int
	// Scale multiplies the window size on screen. Values below 1 mean 1.
	Scale int
}

type game struct {
	cfg     Config
	link    *bridge.Link
	seq     uint64
	img     *ebiten.Image
	scratch []ebiten.Key
}

// Run opens the window, calls fn with a host bound to it on a new
// goroutine and runs the game loop until fn returns, the host is closed
// or the user closes the window. It must be called from the main
// goroutine.
func Run(cfg Config, fn func(h plot.Host) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	scale := max(cfg.Scale, 1)

	g := &game{cfg: cfg, link: bridge.NewLink(cfg.Width, cfg.Height, false)}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetWindowClosingHandled(true)

	result := make(chan error, 1)
	go func() {
		defer g.link.Finish()
		result <- fn(g.link)
	}()

	runErr := ebiten.RunGame(g)
	g.link.Shutdown()
	return errors.Join(runErr, <-result)
}

func (g *game) Update() error {
	if g.link.Finished() {
		return ebiten.Termination
	}
	if title, ok := g.link.TakeTitle(); ok {
		ebiten.SetWindowTitle(title)
	}

	g.scratch = inpututil.AppendJustPressedKeys(g.scratch[:0])
	for _, k := range g.scratch {
		g.link.KeyDown(mapKey(k))
	}
	g.scratch = inpututil.AppendJustReleasedKeys(g.scratch[:0])
	for _, k := range g.scratch {
		g.link.KeyUp(mapKey(k))
	}

	if ebiten.IsWindowBeingClosed() {
		g.link.RequestClose()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if f, ok := g.link.NextFrame(g.seq); ok {
		g.seq = f.Seq
		g.upload(f)
		g.link.Shown()
	}
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

func (g *game) upload(f bridge.Frame) {
	if g.img == nil || g.img.Bounds() != image.Rect(0, 0, f.Width, f.Height) {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(f.Width, f.Height)
	}
	g.img.WritePixels(f.Pix)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
