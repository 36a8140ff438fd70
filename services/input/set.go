package input

import (
	"pocket32-go/types"
	"pocket32-go/x/timex"
)

// Events are the press edges confirmed during one tick.
type Events struct {
	Up, Down, Select, Back bool
}

// Any reports whether at least one button was pressed.
func (e Events) Any() bool { return e.Up || e.Down || e.Select || e.Back }

// Pins names the four navigation inputs.
type Pins struct {
	Up, Down, Select, Back types.InputPin
}

// Set is the four-button navigation pad.
type Set struct {
	up, down, sel, back *Button
}

func NewSet(p Pins, clock timex.Clock) *Set {
	return &Set{
		up:   NewButton(p.Up, clock),
		down: NewButton(p.Down, clock),
		sel:  NewButton(p.Select, clock),
		back: NewButton(p.Back, clock),
	}
}

// Poll samples every button once.
func (s *Set) Poll() Events {
	return Events{
		Up:     s.up.Poll(),
		Down:   s.down.Poll(),
		Select: s.sel.Poll(),
		Back:   s.back.Poll(),
	}
}
