// Command plotdemo draws an animated plot and optionally saves a screenshot.
//
// By default it renders headless for a fixed number of frames:
//
//	plotdemo -frames 60 -screenshot demo.png
//
// Use -host gogpu or -host ebiten to open a real window. Space pauses the
// animation and Escape closes the window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/host/ebitenhost"
	"github.com/gogpu/plot/shader"
)

type config struct {
	width      int
	height     int
	title      string
	backend    string
	palette    string
	frames     int
	screenshot string
	sound      string
}

func main() {
	var (
		cfg     config
		host    = flag.String("host", "headless", "window host: headless, gogpu or ebiten")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.IntVar(&cfg.width, "width", 800, "window width")
	flag.IntVar(&cfg.height, "height", 600, "window height")
	flag.StringVar(&cfg.title, "title", "plotdemo", "window title")
	flag.StringVar(&cfg.backend, "backend", "", "device backend (empty picks the best available)")
	flag.StringVar(&cfg.palette, "palette", "", "YAML palette file")
	flag.IntVar(&cfg.frames, "frames", 0, "stop after this many frames (0 runs until closed)")
	flag.StringVar(&cfg.screenshot, "screenshot", "", "save the last frame to this PNG file")
	flag.StringVar(&cfg.sound, "sound", "", "sound file played on Space")
	flag.Parse()

	if *verbose {
		plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *host == "headless" && cfg.frames == 0 {
		cfg.frames = 60
	}

	var err error
	switch *host {
	case "headless":
		err = run(cfg, plot.NewHeadlessHost(cfg.width, cfg.height))
	case "gogpu":
		err = runGogpu(cfg)
	case "ebiten":
		err = ebitenhost.Run(ebitenhost.Config{Title: cfg.title, Width: cfg.width, Height: cfg.height},
			func(h plot.Host) error { return run(cfg, h) })
	default:
		err = fmt.Errorf("unknown host %q", *host)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadPalette(filename string) (plot.Palette, error) {
	if filename != "" {
		return plot.LoadPalette(filename)
	}
	return plot.ParsePalette("#101018", "#f0f0f0", "#505060", "#ff5050", "#50c0ff", "#ffd040")
}

// Palette slots used by the demo.
const (
	colBackground = iota
	colAxis
	colGrid
	colCurve
	colPoints
	colCircle
)

func run(cfg config, h plot.Host) error {
	palette, err := loadPalette(cfg.palette)
	if err != nil {
		return err
	}

	opts := []plot.Option{plot.WithHost(h)}
	if cfg.backend != "" {
		opts = append(opts, plot.WithBackend(cfg.backend))
	}
	w, err := plot.NewWindow(cfg.width, cfg.height, cfg.title, palette, colBackground, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			log.Printf("close: %v", cerr)
		}
	}()

	aspect := float32(cfg.width) / float32(cfg.height)
	if _, err := w.SetScreen(-4*aspect, 4*aspect, -4, 4); err != nil {
		return err
	}

	var (
		t      float32
		paused bool
		shade  = true
	)
	for frame := 0; cfg.frames == 0 || frame < cfg.frames; frame++ {
		if w.KeyPressed(plot.KeySpace) {
			paused = !paused
			if cfg.sound != "" {
				if err := w.PlaySound(cfg.sound); err != nil {
					log.Printf("sound: %v", err)
				}
			}
		}
		if !paused {
			t += 1.0 / 60
		}

		if shade {
			err := w.Shade([]shader.Constant{shader.Float("t", t)}, rippleBody, "")
			if err != nil {
				log.Printf("shade disabled: %v", err)
				shade = false
			}
		}
		if err := drawScene(w, t); err != nil {
			return err
		}

		if cfg.screenshot != "" && cfg.frames > 0 && frame == cfg.frames-1 {
			w.Screenshot(cfg.screenshot)
		}
		if err := w.Update(); err != nil {
			if errors.Is(err, plot.ErrClosed) {
				return nil
			}
			return err
		}
	}
	return nil
}

const rippleBody = `
let d = length(vec2<f32>(x, y));
let v = 0.5 + 0.5 * sin(d * 4.0 - t * 3.0);
color = vec4<f32>(0.1, 0.2 * v, 0.35 * v, 1.0);
`

func drawScene(w *plot.Window, t float32) error {
	if err := w.DrawAxis(colAxis, colGrid, 2, 1); err != nil {
		return err
	}

	wave := func(x float32) float32 {
		return 2 * math32.Sin(x+t) * math32.Exp(-x*x/16)
	}
	if err := w.DrawFunction(wave, colCurve, 3); err != nil {
		return err
	}

	pts := make([]plot.Vec2, 0, 16)
	for i := 0; i < 16; i++ {
		x := -4 + float32(i)*0.5
		pts = append(pts, plot.Vec2{X: x, Y: wave(x)})
	}
	if err := w.DrawPoints(pts, colPoints, 8); err != nil {
		return err
	}

	r := 1.5 + 0.25*math32.Sin(2*t)
	return w.DrawCircle(plot.Vec2{}, r, colCircle, 2, 64)
}
