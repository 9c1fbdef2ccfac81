//go:build !nogpu

package gogpuhost

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/plot"
)

var keyMap = map[gpucontext.Key]plot.Key{
	gpucontext.KeySpace:     plot.KeySpace,
	gpucontext.KeyEscape:    plot.KeyEscape,
	gpucontext.KeyEnter:     plot.KeyEnter,
	gpucontext.KeyTab:       plot.KeyTab,
	gpucontext.KeyBackspace: plot.KeyBackspace,
	gpucontext.KeyLeft:      plot.KeyLeft,
	gpucontext.KeyRight:     plot.KeyRight,
	gpucontext.KeyUp:        plot.KeyUp,
	gpucontext.KeyDown:      plot.KeyDown,

	gpucontext.Key0: plot.Key0,
	gpucontext.Key1: plot.Key1,
	gpucontext.Key2: plot.Key2,
	gpucontext.Key3: plot.Key3,
	gpucontext.Key4: plot.Key4,
	gpucontext.Key5: plot.Key5,
	gpucontext.Key6: plot.Key6,
	gpucontext.Key7: plot.Key7,
	gpucontext.Key8: plot.Key8,
	gpucontext.Key9: plot.Key9,

	gpucontext.KeyA: plot.KeyA,
	gpucontext.KeyB: plot.KeyB,
	gpucontext.KeyC: plot.KeyC,
	gpucontext.KeyD: plot.KeyD,
	gpucontext.KeyE: plot.KeyE,
	gpucontext.KeyF: plot.KeyF,
	gpucontext.KeyG: plot.KeyG,
	gpucontext.KeyH: plot.KeyH,
	gpucontext.KeyI: plot.KeyI,
	gpucontext.KeyJ: plot.KeyJ,
	gpucontext.KeyK: plot.KeyK,
	gpucontext.KeyL: plot.KeyL,
	gpucontext.KeyM: plot.KeyM,
	gpucontext.KeyN: plot.KeyN,
	gpucontext.KeyO: plot.KeyO,
	gpucontext.KeyP: plot.KeyP,
	gpucontext.KeyQ: plot.KeyQ,
	gpucontext.KeyR: plot.KeyR,
	gpucontext.KeyS: plot.KeyS,
	gpucontext.KeyT: plot.KeyT,
	gpucontext.KeyU: plot.KeyU,
	gpucontext.KeyV: plot.KeyV,
	gpucontext.KeyW: plot.KeyW,
	gpucontext.KeyX: plot.KeyX,
	gpucontext.KeyY: plot.KeyY,
	gpucontext.KeyZ: plot.KeyZ,
}

// mapKey converts a gogpu key to a plot key.
func mapKey(k gpucontext.Key) plot.Key {
	if pk, ok := keyMap[k]; ok {
		return pk
	}
	return plot.KeyUnknown
}
