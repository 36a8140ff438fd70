package timex

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewManual(start)
	if !m.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", m.Now(), start)
	}
	m.Advance(25 * time.Millisecond)
	if got := m.Now().Sub(start); got != 25*time.Millisecond {
		t.Fatalf("elapsed = %v, want 25ms", got)
	}
}

var _ Clock = System{}
var _ Clock = (*Manual)(nil)
