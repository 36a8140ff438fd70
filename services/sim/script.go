package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"

	"pocket32-go/bus"
	"pocket32-go/errcode"
	"pocket32-go/services/input"
	"pocket32-go/services/ui"
	"pocket32-go/x/timex"
)

// DefaultTick matches the firmware loop.
const DefaultTick = ui.TickPeriod

// ExpectError reports a screen row that did not match.
type ExpectError struct {
	Row       int
	Want, Got string
}

func (e *ExpectError) Error() string {
	return fmt.Sprintf("row %d: want %q, got %q", e.Row, e.Want, e.Got)
}

// Runner drives a Machine from a line script on a manual clock, so runs
// are repeatable.
type Runner struct {
	clock *timex.Manual
	tick  time.Duration
	out   io.Writer

	m    *Machine
	conn *bus.Connection
	lcd  *LCD
}

// NewRunner boots a fresh Machine on its own bus and enters the menu.
func NewRunner(out io.Writer, tick time.Duration) *Runner {
	if tick <= 0 {
		tick = DefaultTick
	}
	b := bus.NewBus(32)
	clock := timex.NewManual(time.Unix(0, 0))
	r := &Runner{
		clock: clock,
		tick:  tick,
		out:   out,
		m:     NewMachine(b, clock),
		conn:  b.NewConnection("script"),
	}
	r.lcd = WatchLCD(r.conn)
	r.m.Boot()
	r.clock.Advance(BootDelay)
	r.m.Start()
	r.lcd.Drain()
	return r
}

func (r *Runner) Machine() *Machine { return r.m }

// Row is the current text of a screen row.
func (r *Runner) Row(i int) string { return r.lcd.Row(i) }

// Run executes src line by line and stops at the first failure.
func (r *Runner) Run(src io.Reader) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		if err := r.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// Exec runs one script line. Blank lines and # comments are no-ops.
func (r *Runner) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return errcode.Wrap(errcode.InvalidParams, "parse", err)
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "press":
		return r.press(args)
	case "hold":
		return r.hold(args)
	case "wait":
		if len(args) != 1 {
			return usage("wait <duration>")
		}
		d, err := time.ParseDuration(args[0])
		if err != nil {
			return errcode.Wrap(errcode.InvalidParams, "wait", err)
		}
		r.advance(d)
	case "tick":
		n, err := optCount(args)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			r.step()
		}
	case "ir":
		if len(args) != 1 {
			return usage("ir <hex>")
		}
		code, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(args[0]), "0x"), 16, 32)
		if err != nil {
			return errcode.Wrap(errcode.InvalidParams, "ir", err)
		}
		SendIR(r.conn, uint32(code))
		r.step()
	case "radio":
		if len(args) != 1 {
			return usage("radio ok|fail|absent")
		}
		mode, ok := ParseRadioMode(args[0])
		if !ok {
			return usage("radio ok|fail|absent")
		}
		SetRadio(r.conn, mode)
		r.step()
	case "show":
		rows := r.lcd.Rows()
		fmt.Fprintf(r.out, "|%-16s|\n|%-16s|\n", rows[0], rows[1])
	case "expect":
		if len(args) < 1 || len(args) > 2 {
			return usage("expect <row> <text>")
		}
		row, err := strconv.Atoi(args[0])
		if err != nil || row < 0 || row > 1 {
			return usage("expect <row> <text>")
		}
		want := ""
		if len(args) == 2 {
			want = args[1]
		}
		if got := r.lcd.Row(row); got != want {
			return &ExpectError{Row: row, Want: want, Got: got}
		}
	default:
		return errcode.Wrap(errcode.InvalidParams, "script", fmt.Errorf("unknown command %q", cmd))
	}
	return nil
}

func (r *Runner) press(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("press <button> [n]")
	}
	n, err := optCount(args[1:])
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := r.holdFor(args[0], DefaultHold); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) hold(args []string) error {
	if len(args) != 2 {
		return usage("hold <button> <duration>")
	}
	d, err := time.ParseDuration(args[1])
	if err != nil || d <= 0 {
		return usage("hold <button> <duration>")
	}
	return r.holdFor(args[0], d)
}

// holdFor presses name for d, then idles until the release has settled.
func (r *Runner) holdFor(name string, d time.Duration) error {
	if _, ok := r.m.pad.ByName(name); !ok {
		return errcode.Wrap(errcode.InvalidParams, "button", fmt.Errorf("unknown button %q", name))
	}
	PressButton(r.conn, name, d)
	r.advance(d + 2*input.DebounceWindow)
	return nil
}

// step runs one tick at the current time, then moves the clock on.
func (r *Runner) step() {
	r.m.Step()
	r.lcd.Drain()
	r.clock.Advance(r.tick)
}

func (r *Runner) advance(d time.Duration) {
	for end := r.clock.Now().Add(d); r.clock.Now().Before(end); {
		r.step()
	}
}

func optCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, usage("count must be a positive integer")
	}
	return n, nil
}

func usage(s string) error {
	return errcode.Wrap(errcode.InvalidParams, "usage", fmt.Errorf("%s", s))
}
