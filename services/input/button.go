package input

import (
	"time"

	"pocket32-go/types"
	"pocket32-go/x/timex"
)

// DebounceWindow is the minimum quiet interval between accepted transitions.
const DebounceWindow = 25 * time.Millisecond

// Button debounces an active-low push button read by polling.
type Button struct {
	pin    types.InputPin
	clock  timex.Clock
	window time.Duration

	state   bool // debounced: true == pressed
	prev    bool // debounced state before the last accepted transition
	changed time.Time
}

// NewButton snapshots the current pin level as the initial state. The
// snapshot counts as an accepted transition, so nothing is reported for
// the first DebounceWindow.
func NewButton(pin types.InputPin, clock timex.Clock) *Button {
	b := &Button{pin: pin, clock: clock, window: DebounceWindow}
	b.state = b.pressed()
	b.prev = b.state
	b.changed = clock.Now()
	return b
}

// Poll returns true exactly once per confirmed press (released -> pressed).
func (b *Button) Poll() bool {
	raw := b.pressed()
	if raw == b.state {
		return false
	}
	now := b.clock.Now()
	if now.Sub(b.changed) < b.window {
		return false
	}
	b.prev, b.state = b.state, raw
	b.changed = now
	return b.state && !b.prev
}

// Pressed is the debounced state.
func (b *Button) Pressed() bool { return b.state }

func (b *Button) pressed() bool { return !b.pin.Get() }
