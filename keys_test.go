package plot

import "testing"

func TestKeyStateAdvance(t *testing.T) {
	down := Event{Kind: EventKeyDown, Key: KeyA}
	up := Event{Kind: EventKeyUp, Key: KeyA}

	type frame struct {
		events                  []Event
		state, pressed, release bool
	}
	tests := []struct {
		name   string
		frames []frame
	}{
		{"tap in one batch", []frame{
			{[]Event{down, up}, true, true, false},
			{nil, false, false, true},
			{nil, false, false, false},
		}},
		{"press then release", []frame{
			{[]Event{down}, true, true, false},
			{[]Event{up}, false, false, true},
		}},
		{"tap then press again", []frame{
			{[]Event{down, up, down}, true, true, false},
			{nil, true, false, false},
		}},
		{"tap while deferred release pending", []frame{
			{[]Event{down, up}, true, true, false},
			{[]Event{down}, true, false, false},
			{nil, true, false, false},
		}},
		{"release and repress while held", []frame{
			{[]Event{down}, true, true, false},
			{[]Event{up, down}, true, false, false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newKeyState()
			for i, f := range tt.frames {
				s.advance(f.events)
				if s.down(KeyA) != f.state || s.pressed(KeyA) != f.pressed || s.released(KeyA) != f.release {
					t.Errorf("frame %d: state=%v pressed=%v released=%v, want %v %v %v",
						i, s.down(KeyA), s.pressed(KeyA), s.released(KeyA), f.state, f.pressed, f.release)
				}
			}
		})
	}
}
