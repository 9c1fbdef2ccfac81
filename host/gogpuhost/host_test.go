//go:build !nogpu

package gogpuhost

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/plot"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		in   gpucontext.Key
		want plot.Key
	}{
		{gpucontext.KeySpace, plot.KeySpace},
		{gpucontext.KeyEscape, plot.KeyEscape},
		{gpucontext.KeyA, plot.KeyA},
		{gpucontext.KeyZ, plot.KeyZ},
		{gpucontext.Key0, plot.Key0},
		{gpucontext.KeyLeft, plot.KeyLeft},
	}
	for _, tt := range tests {
		if got := mapKey(tt.in); got != tt.want {
			t.Errorf("mapKey(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestKeyMapIsInjective(t *testing.T) {
	seen := make(map[plot.Key]gpucontext.Key, len(keyMap))
	for g, p := range keyMap {
		if prev, dup := seen[p]; dup {
			t.Errorf("plot key %d mapped from both %v and %v", p, prev, g)
		}
		seen[p] = g
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	called := false
	err := Run(Config{Width: 0, Height: 10}, func(plot.Host) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Run() error = %v, want ErrInvalidConfig", err)
	}
	if called {
		t.Error("fn called for invalid config")
	}
}
