package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/plot"
)

var keyMap = map[ebiten.Key]plot.Key{
	ebiten.KeySpace:          plot.KeySpace,
	ebiten.KeyQuote:          plot.KeyApostrophe,
	ebiten.KeyComma:          plot.KeyComma,
	ebiten.KeyMinus:          plot.KeyMinus,
	ebiten.KeyPeriod:         plot.KeyPeriod,
	ebiten.KeySlash:          plot.KeySlash,
	ebiten.KeyDigit0:         plot.Key0,
	ebiten.KeyDigit1:         plot.Key1,
	ebiten.KeyDigit2:         plot.Key2,
	ebiten.KeyDigit3:         plot.Key3,
	ebiten.KeyDigit4:         plot.Key4,
	ebiten.KeyDigit5:         plot.Key5,
	ebiten.KeyDigit6:         plot.Key6,
	ebiten.KeyDigit7:         plot.Key7,
	ebiten.KeyDigit8:         plot.Key8,
	ebiten.KeyDigit9:         plot.Key9,
	ebiten.KeySemicolon:      plot.KeySemicolon,
	ebiten.KeyEqual:          plot.KeyEqual,
	ebiten.KeyA:              plot.KeyA,
	ebiten.KeyB:              plot.KeyB,
	ebiten.KeyC:              plot.KeyC,
	ebiten.KeyD:              plot.KeyD,
	ebiten.KeyE:              plot.KeyE,
	ebiten.KeyF:              plot.KeyF,
	ebiten.KeyG:              plot.KeyG,
	ebiten.KeyH:              plot.KeyH,
	ebiten.KeyI:              plot.KeyI,
	ebiten.KeyJ:              plot.KeyJ,
	ebiten.KeyK:              plot.KeyK,
	ebiten.KeyL:              plot.KeyL,
	ebiten.KeyM:              plot.KeyM,
	ebiten.KeyN:              plot.KeyN,
	ebiten.KeyO:              plot.KeyO,
	ebiten.KeyP:              plot.KeyP,
	ebiten.KeyQ:              plot.KeyQ,
	ebiten.KeyR:              plot.KeyR,
	ebiten.KeyS:              plot.KeyS,
	ebiten.KeyT:              plot.KeyT,
	ebiten.KeyU:              plot.KeyU,
	ebiten.KeyV:              plot.KeyV,
	ebiten.KeyW:              plot.KeyW,
	ebiten.KeyX:              plot.KeyX,
	ebiten.KeyY:              plot.KeyY,
	ebiten.KeyZ:              plot.KeyZ,
	ebiten.KeyBracketLeft:    plot.KeyLeftBracket,
	ebiten.KeyBackslash:      plot.KeyBackslash,
	ebiten.KeyBracketRight:   plot.KeyRightBracket,
	ebiten.KeyBackquote:      plot.KeyGraveAccent,
	ebiten.KeyEscape:         plot.KeyEscape,
	ebiten.KeyEnter:          plot.KeyEnter,
	ebiten.KeyTab:            plot.KeyTab,
	ebiten.KeyBackspace:      plot.KeyBackspace,
	ebiten.KeyInsert:         plot.KeyInsert,
	ebiten.KeyDelete:         plot.KeyDelete,
	ebiten.KeyArrowRight:     plot.KeyRight,
	ebiten.KeyArrowLeft:      plot.KeyLeft,
	ebiten.KeyArrowDown:      plot.KeyDown,
	ebiten.KeyArrowUp:        plot.KeyUp,
	ebiten.KeyPageUp:         plot.KeyPageUp,
	ebiten.KeyPageDown:       plot.KeyPageDown,
	ebiten.KeyHome:           plot.KeyHome,
	ebiten.KeyEnd:            plot.KeyEnd,
	ebiten.KeyCapsLock:       plot.KeyCapsLock,
	ebiten.KeyScrollLock:     plot.KeyScrollLock,
	ebiten.KeyNumLock:        plot.KeyNumLock,
	ebiten.KeyPrintScreen:    plot.KeyPrintScreen,
	ebiten.KeyPause:          plot.KeyPause,
	ebiten.KeyF1:             plot.KeyF1,
	ebiten.KeyF2:             plot.KeyF2,
	ebiten.KeyF3:             plot.KeyF3,
	ebiten.KeyF4:             plot.KeyF4,
	ebiten.KeyF5:             plot.KeyF5,
	ebiten.KeyF6:             plot.KeyF6,
	ebiten.KeyF7:             plot.KeyF7,
	ebiten.KeyF8:             plot.KeyF8,
	ebiten.KeyF9:             plot.KeyF9,
	ebiten.KeyF10:            plot.KeyF10,
	ebiten.KeyF11:            plot.KeyF11,
	ebiten.KeyF12:            plot.KeyF12,
	ebiten.KeyNumpad0:        plot.KeyKP0,
	ebiten.KeyNumpad1:        plot.KeyKP1,
	ebiten.KeyNumpad2:        plot.KeyKP2,
	ebiten.KeyNumpad3:        plot.KeyKP3,
	ebiten.KeyNumpad4:        plot.KeyKP4,
	ebiten.KeyNumpad5:        plot.KeyKP5,
	ebiten.KeyNumpad6:        plot.KeyKP6,
	ebiten.KeyNumpad7:        plot.KeyKP7,
	ebiten.KeyNumpad8:        plot.KeyKP8,
	ebiten.KeyNumpad9:        plot.KeyKP9,
	ebiten.KeyNumpadDecimal:  plot.KeyKPDecimal,
	ebiten.KeyNumpadDivide:   plot.KeyKPDivide,
	ebiten.KeyNumpadMultiply: plot.KeyKPMultiply,
	ebiten.KeyNumpadSubtract: plot.KeyKPSubtract,
	ebiten.KeyNumpadAdd:      plot.KeyKPAdd,
	ebiten.KeyNumpadEnter:    plot.KeyKPEnter,
	ebiten.KeyNumpadEqual:    plot.KeyKPEqual,
	ebiten.KeyShiftLeft:      plot.KeyLeftShift,
	ebiten.KeyControlLeft:    plot.KeyLeftControl,
	ebiten.KeyAltLeft:        plot.KeyLeftAlt,
	ebiten.KeyMetaLeft:       plot.KeyLeftSuper,
	ebiten.KeyShiftRight:     plot.KeyRightShift,
	ebiten.KeyControlRight:   plot.KeyRightControl,
	ebiten.KeyAltRight:       plot.KeyRightAlt,
	ebiten.KeyMetaRight:      plot.KeyRightSuper,
	ebiten.KeyContextMenu:    plot.KeyMenu,
}

// mapKey converts an Ebitengine key to a plot key.
func mapKey(k ebiten.Key) plot.Key {
	if pk, ok := keyMap[k]; ok {
		return pk
	}
	return plot.KeyUnknown
}
