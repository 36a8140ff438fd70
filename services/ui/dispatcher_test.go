package ui

import (
	"testing"
	"time"

	"pocket32-go/services/apps"
	"pocket32-go/services/display"
	"pocket32-go/services/input"
	"pocket32-go/types"
	"pocket32-go/x/timex"
)

type rows struct{ r [2]string }

func (d *rows) Size() (int, int) { return 16, 2 }
func (d *rows) WriteLine(row int, text []byte) error {
	d.r[row] = string(text)
	return nil
}

// script hands out one Events value per Poll, then idles.
type script struct{ ev []input.Events }

func (s *script) Poll() input.Events {
	if len(s.ev) == 0 {
		return input.Events{}
	}
	e := s.ev[0]
	s.ev = s.ev[1:]
	return e
}

func (s *script) push(e ...input.Events) { s.ev = append(s.ev, e...) }

var (
	up   = input.Events{Up: true}
	down = input.Events{Down: true}
	sel  = input.Events{Select: true}
	back = input.Events{Back: true}
	idle = input.Events{}
)

// recorder logs lifecycle calls in order.
type recorder struct{ calls []string }

func (r *recorder) Begin(*apps.Env)  { r.calls = append(r.calls, "begin") }
func (r *recorder) Update(*apps.Env) { r.calls = append(r.calls, "update") }

func newDispatcher() (*Dispatcher, *script, *rows) {
	d := &rows{}
	clk := timex.NewManual(time.Unix(0, 0))
	env := &apps.Env{
		Screen: display.New(d),
		Clock:  clk,
		Boot:   clk.Now(),
		IR:     types.Absent[types.IRReceiver](nil),
		Radio:  types.Absent[types.Radio](nil),
	}
	in := &script{}
	disp := NewDispatcher(env, in, nil)
	disp.Start()
	return disp, in, d
}

func tickN(d *Dispatcher, n int) {
	for i := 0; i < n; i++ {
		d.Tick()
	}
}

func TestDispatcher_StartsOnMenu(t *testing.T) {
	d, _, scr := newDispatcher()
	if d.Mode() != ModeMenu || d.Index() != 0 {
		t.Fatalf("mode=%v idx=%d", d.Mode(), d.Index())
	}
	if scr.r != [2]string{"> IR Tools", "  Sub-GHz      v"} {
		t.Fatalf("rows=%q", scr.r)
	}
}

func TestDispatcher_Boot(t *testing.T) {
	d, _, scr := newDispatcher()
	d.Boot("ESP32 Flipper")
	if scr.r != [2]string{"ESP32 Flipper", "Booting..."} {
		t.Fatalf("rows=%q", scr.r)
	}
}

func TestDispatcher_DownWraps(t *testing.T) {
	for n := 0; n <= 9; n++ {
		d, in, _ := newDispatcher()
		for i := 0; i < n; i++ {
			in.push(down)
		}
		tickN(d, n)
		if d.Index() != n%4 {
			t.Fatalf("%d downs: idx=%d", n, d.Index())
		}
		in.push(up)
		d.Tick()
		if want := ((n-1)%4 + 4) % 4; d.Index() != want {
			t.Fatalf("%d downs + up: idx=%d want %d", n, d.Index(), want)
		}
	}
}

func TestDispatcher_FiveDownsSelectsSecond(t *testing.T) {
	d, in, scr := newDispatcher()
	in.push(down, down, down, down, down)
	tickN(d, 5)
	if d.Index() != 1 {
		t.Fatalf("idx=%d", d.Index())
	}
	if scr.r != [2]string{"  IR Tools", "> Sub-GHz      v"} {
		t.Fatalf("rows=%q", scr.r)
	}
}

func TestDispatcher_UpFromFirstWrapsToLast(t *testing.T) {
	d, in, scr := newDispatcher()
	in.push(up)
	d.Tick()
	if d.Index() != 3 {
		t.Fatalf("idx=%d", d.Index())
	}
	if scr.r != [2]string{"  Utilities    ^", "> Settings"} {
		t.Fatalf("rows=%q", scr.r)
	}
}

func TestDispatcher_EnterBeginsOnceThenUpdates(t *testing.T) {
	d, in, _ := newDispatcher()
	rec := &recorder{}
	d.apps[apps.Utils] = rec

	in.push(down, down, sel, idle, idle)
	tickN(d, 5)
	if d.Mode() != ModeApp || d.Active() != apps.Utils {
		t.Fatalf("mode=%v active=%v", d.Mode(), d.Active())
	}
	want := []string{"begin", "update", "update"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls=%v", rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls=%v", rec.calls)
		}
	}
}

func TestDispatcher_BackReturnsToMenu(t *testing.T) {
	d, in, scr := newDispatcher()
	rec := &recorder{}
	d.apps[apps.SubGHz] = rec

	in.push(down, sel, back)
	tickN(d, 3)
	if d.Mode() != ModeMenu || d.Index() != 1 {
		t.Fatalf("mode=%v idx=%d", d.Mode(), d.Index())
	}
	// The back tick still updates the app before leaving.
	if len(rec.calls) != 2 || rec.calls[1] != "update" {
		t.Fatalf("calls=%v", rec.calls)
	}
	if scr.r != [2]string{"  IR Tools", "> Sub-GHz      v"} {
		t.Fatalf("rows=%q", scr.r)
	}

	in.push(sel)
	d.Tick()
	if rec.calls[len(rec.calls)-1] != "begin" {
		t.Fatalf("re-entry must Begin again: %v", rec.calls)
	}
}

func TestDispatcher_MenuKeysIgnoredInApp(t *testing.T) {
	d, in, _ := newDispatcher()
	in.push(sel, down, up, down)
	tickN(d, 4)
	if d.Mode() != ModeApp || d.Index() != 0 {
		t.Fatalf("mode=%v idx=%d", d.Mode(), d.Index())
	}
}

func TestDispatcher_RealAppsRender(t *testing.T) {
	d, in, scr := newDispatcher()
	in.push(down, down, down, sel)
	tickN(d, 4)
	if scr.r != [2]string{"Settings", "Edit pin map"} {
		t.Fatalf("rows=%q", scr.r)
	}
}

func TestMark(t *testing.T) {
	if got := string(mark([]byte("> a very long menu name"), 16, 'v')); got != "> a very long mv" {
		t.Fatalf("got %q", got)
	}
	if got := string(mark([]byte("ab"), 5, '^')); got != "ab  ^" {
		t.Fatalf("got %q", got)
	}
}

func TestDispatcher_BootDefaultBanner(t *testing.T) {
	d, _, scr := newDispatcher()
	d.Boot("")
	if scr.r[0] != DefaultBanner {
		t.Fatalf("row0=%q", scr.r[0])
	}
}
