package heartbeat

import (
	"testing"
	"time"

	"pocket32-go/x/timex"
)

func TestBeat_Schedule(t *testing.T) {
	clk := timex.NewManual(time.Unix(0, 0))
	b := New(clk, time.Second)

	if b.Due() {
		t.Fatal("first beat is one interval out")
	}
	clk.Advance(999 * time.Millisecond)
	if b.Due() {
		t.Fatal("early")
	}
	clk.Advance(time.Millisecond)
	if !b.Due() || b.Due() {
		t.Fatal("expected exactly one beat at 1s")
	}

	// A long stall owes one beat, not five.
	clk.Advance(5 * time.Second)
	if !b.Due() || b.Due() {
		t.Fatal("missed beats must collapse")
	}
	if b.Count() != 2 {
		t.Fatalf("count=%d", b.Count())
	}
}

func TestBeat_DefaultInterval(t *testing.T) {
	clk := timex.NewManual(time.Unix(0, 0))
	b := New(clk, 0)
	clk.Advance(DefaultInterval - time.Millisecond)
	if b.Due() {
		t.Fatal("early")
	}
	clk.Advance(time.Millisecond)
	if !b.Due() || b.Count() != 1 {
		t.Fatalf("expected first beat at %v", DefaultInterval)
	}
}
