// Package heartbeat paces the periodic liveness line on the serial log.
package heartbeat

import (
	"time"

	"pocket32-go/x/timex"
)

// DefaultInterval between heartbeat lines.
const DefaultInterval = 10 * time.Second

// Beat is polled from the UI loop; it does not start goroutines.
type Beat struct {
	clock timex.Clock
	every time.Duration
	next  time.Time
	count uint32
}

// New schedules the first beat one interval from now. A non-positive
// interval selects DefaultInterval.
func New(clock timex.Clock, every time.Duration) *Beat {
	if every <= 0 {
		every = DefaultInterval
	}
	return &Beat{clock: clock, every: every, next: clock.Now().Add(every)}
}

// Due reports whether a beat is owed and, if so, schedules the next one.
// Missed beats collapse into one.
func (b *Beat) Due() bool {
	now := b.clock.Now()
	if now.Before(b.next) {
		return false
	}
	b.count++
	b.next = b.next.Add(b.every)
	if !b.next.After(now) {
		b.next = now.Add(b.every)
	}
	return true
}

// Count is the number of beats reported.
func (b *Beat) Count() uint32 { return b.count }

