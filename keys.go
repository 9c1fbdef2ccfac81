package plot

// Key is a keyboard key. Values follow the GLFW key codes so that
// printable keys equal their uppercase ASCII code.
type Key int

// Key codes.
const (
	KeyUnknown Key = -1

	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96

	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyKP0          Key = 320
	KeyKP1          Key = 321
	KeyKP2          Key = 322
	KeyKP3          Key = 323
	KeyKP4          Key = 324
	KeyKP5          Key = 325
	KeyKP6          Key = 326
	KeyKP7          Key = 327
	KeyKP8          Key = 328
	KeyKP9          Key = 329
	KeyKPDecimal    Key = 330
	KeyKPDivide     Key = 331
	KeyKPMultiply   Key = 332
	KeyKPSubtract   Key = 333
	KeyKPAdd        Key = 334
	KeyKPEnter      Key = 335
	KeyKPEqual      Key = 336
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
)

// keyState holds two generations of key-down flags. Keys absent from a
// map are up. A key released in the same batch it was pressed stays down
// for one frame and is released on the next advance.
type keyState struct {
	cur     map[Key]bool
	prev    map[Key]bool
	pending map[Key]bool
}

func newKeyState() keyState {
	return keyState{cur: make(map[Key]bool), prev: make(map[Key]bool), pending: make(map[Key]bool)}
}

// advance starts a new generation and applies the frame's key events.
func (s *keyState) advance(events []Event) {
	clear(s.prev)
	for k, down := range s.cur {
		s.prev[k] = down
	}
	for k := range s.pending {
		s.cur[k] = false
	}
	clear(s.pending)
	for _, e := range events {
		switch e.Kind {
		case EventKeyDown:
			s.cur[e.Key] = true
			delete(s.pending, e.Key)
		case EventKeyUp:
			if s.cur[e.Key] && !s.prev[e.Key] {
				s.pending[e.Key] = true
				continue
			}
			s.cur[e.Key] = false
		}
	}
}

func (s *keyState) down(k Key) bool     { return s.cur[k] }
func (s *keyState) pressed(k Key) bool  { return s.cur[k] && !s.prev[k] }
func (s *keyState) released(k Key) bool { return !s.cur[k] && s.prev[k] }

// KeyState reports whether k is held down.
func (w *Window) KeyState(k Key) bool {
	return w.keys.down(k)
}

// KeyPressed reports whether k went down during the last Update.
func (w *Window) KeyPressed(k Key) bool {
	return w.keys.pressed(k)
}

// KeyReleased reports whether k went up during the last Update.
func (w *Window) KeyReleased(k Key) bool {
	return w.keys.released(k)
}
