package ebitenhost

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/bridge"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		in   ebiten.Key
		want plot.Key
	}{
		{ebiten.KeySpace, plot.KeySpace},
		{ebiten.KeyEscape, plot.KeyEscape},
		{ebiten.KeyA, plot.KeyA},
		{ebiten.KeyDigit7, plot.Key7},
		{ebiten.KeyArrowUp, plot.KeyUp},
		{ebiten.KeyNumpadEnter, plot.KeyKPEnter},
		{ebiten.KeyF12, plot.KeyF12},
		{ebiten.KeyMetaRight, plot.KeyRightSuper},
	}
	for _, tt := range tests {
		if got := mapKey(tt.in); got != tt.want {
			t.Errorf("mapKey(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestKeyMapIsInjective(t *testing.T) {
	seen := make(map[plot.Key]ebiten.Key, len(keyMap))
	for e, p := range keyMap {
		if prev, dup := seen[p]; dup {
			t.Errorf("plot key %d mapped from both %v and %v", p, prev, e)
		}
		seen[p] = e
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := &game{cfg: Config{Width: 320, Height: 200}, link: bridge.NewLink(320, 200, false)}
	for _, outside := range [][2]int{{640, 400}, {100, 100}} {
		w, h := g.Layout(outside[0], outside[1])
		if w != 320 || h != 200 {
			t.Errorf("Layout(%v) = %d, %d", outside, w, h)
		}
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	err := Run(Config{Width: 10, Height: -1}, func(plot.Host) error {
		t.Error("fn called for invalid config")
		return nil
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Run() error = %v, want ErrInvalidConfig", err)
	}
}
