package sim

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket32-go/bus"
	"pocket32-go/errcode"
	"pocket32-go/services/apps"
	"pocket32-go/services/ui"
	"pocket32-go/x/timex"
)

func newRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewRunner(&out, DefaultTick), &out
}

func rows(r *Runner) [2]string { return [2]string{r.Row(0), r.Row(1)} }

func TestRunner_BootsIntoMenu(t *testing.T) {
	r, _ := newRunner(t)
	assert.Equal(t, [2]string{"> IR Tools", "  Sub-GHz      v"}, rows(r))
	assert.Equal(t, ui.ModeMenu, r.Machine().Dispatcher().Mode())
}

func TestRunner_FiveDownsWrapToSecondItem(t *testing.T) {
	r, _ := newRunner(t)
	require.NoError(t, r.Exec("press down 5"))
	assert.Equal(t, 1, r.Machine().Dispatcher().Index())
	assert.Equal(t, [2]string{"  IR Tools", "> Sub-GHz      v"}, rows(r))

	require.NoError(t, r.Exec("press up 2"))
	assert.Equal(t, [2]string{"  Utilities    ^", "> Settings"}, rows(r))
}

func TestRunner_SubGHzPresetsAndRSSI(t *testing.T) {
	r, _ := newRunner(t)
	script := `
# open the radio tool
press down
press select
expect 0 "Sub 433.92MHz"
expect 1 "RSSI -77 dBm"
press up
expect 0 "Sub 868.35MHz"
press up
expect 0 "Sub 915.00MHz"
press up
expect 0 "Sub 315.00MHz"
press down
expect 0 "Sub 915.00MHz"
`
	require.NoError(t, r.Run(strings.NewReader(script)))
	assert.Equal(t, uint32(915_000), r.Machine().Radio().Frequency())
	assert.Equal(t, 1, r.Machine().Radio().Begins())
}

func TestRunner_RadioFailureNeedsSelect(t *testing.T) {
	r, _ := newRunner(t)
	require.NoError(t, r.Exec("radio fail"))
	require.NoError(t, r.Exec("press down"))
	require.NoError(t, r.Exec("press select"))
	assert.Equal(t, "Init fail -2", r.Row(1))

	require.NoError(t, r.Exec("radio ok"))
	require.NoError(t, r.Exec("wait 200ms"))
	assert.Equal(t, "Init fail -2", r.Row(1), "no automatic retry")

	require.NoError(t, r.Exec("press select"))
	assert.Equal(t, "RSSI -77 dBm", r.Row(1))

	require.NoError(t, r.Exec("radio absent"))
	assert.Equal(t, "No radio", r.Row(1))
	assert.Equal(t, RadioAbsent, r.Machine().RadioMode())
}

func TestRunner_IRCodes(t *testing.T) {
	r, _ := newRunner(t)
	require.NoError(t, r.Exec("press select"))
	assert.Equal(t, [2]string{"IR Receiver", "C:0 Waiting"}, rows(r))

	require.NoError(t, r.Exec("ir 0xdeadbeef"))
	require.NoError(t, r.Exec("ir 20DF10EF"))
	assert.Equal(t, "C:2 0x20DF10EF", r.Row(1))

	require.NoError(t, r.Exec("press back"))
	assert.Equal(t, ui.ModeMenu, r.Machine().Dispatcher().Mode())
	assert.Equal(t, "> IR Tools", r.Row(0))
}

func TestRunner_UtilsAndSettings(t *testing.T) {
	r, _ := newRunner(t)
	require.NoError(t, r.Run(strings.NewReader("press up\npress select\nexpect 0 Settings\nexpect 1 \"Edit pin map\"\npress back\npress up\npress select\n")))
	assert.Equal(t, apps.Utils, r.Machine().Dispatcher().Active())
	assert.Equal(t, "Utilities", r.Row(0))
	assert.True(t, strings.HasPrefix(r.Row(1), "Uptime "), r.Row(1))

	before := r.Row(1)
	require.NoError(t, r.Exec("wait 3s"))
	assert.NotEqual(t, before, r.Row(1))
}

func TestRunner_HoldIsOnePress(t *testing.T) {
	r, _ := newRunner(t)
	require.NoError(t, r.Exec("hold down 2s"))
	assert.Equal(t, 1, r.Machine().Dispatcher().Index())
}

func TestRunner_Show(t *testing.T) {
	r, out := newRunner(t)
	require.NoError(t, r.Exec("show"))
	assert.Equal(t, "|> IR Tools      |\n|  Sub-GHz      v|\n", out.String())
}

func TestRunner_Errors(t *testing.T) {
	r, _ := newRunner(t)

	err := r.Exec("jump")
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))

	assert.Error(t, r.Exec("press sideways"))
	assert.Error(t, r.Exec("press up 0"))
	assert.Error(t, r.Exec("wait soon"))
	assert.Error(t, r.Exec("radio maybe"))
	assert.Error(t, r.Exec("ir xyz"))
	assert.Error(t, r.Exec(`expect 0 "unterminated`))
	assert.NoError(t, r.Exec("   # just a comment"))

	err = r.Run(strings.NewReader("tick\nexpect 1 nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	var ee *ExpectError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 1, ee.Row)
	assert.Equal(t, "nope", ee.Want)
}

func newMachine(t *testing.T) (*bus.Bus, *timex.Manual, *Machine) {
	t.Helper()
	b := bus.NewBus(32)
	clk := timex.NewManual(time.Unix(0, 0))
	m := NewMachine(b, clk)
	m.Boot()
	clk.Advance(BootDelay)
	m.Start()
	t.Cleanup(m.Close)
	return b, clk, m
}

func TestMachine_IgnoresUnknownButtons(t *testing.T) {
	b, _, m := newMachine(t)
	PressButton(b.NewConnection("t"), "sideways", 0)
	m.Step()
	assert.Equal(t, 0, m.Dispatcher().Index())
}

func TestMachine_SecondPressDuringHoldIsQueued(t *testing.T) {
	b, clk, m := newMachine(t)
	conn := b.NewConnection("t")

	PressButton(conn, "down", 0)
	m.Step()
	clk.Advance(30 * time.Millisecond)
	PressButton(conn, "down", 0)
	for i := 0; i < 30; i++ {
		m.Step()
		clk.Advance(DefaultTick)
	}
	assert.Equal(t, 2, m.Dispatcher().Index())
	assert.Empty(t, m.holds)
}

func TestMachine_RunStopsOnCancel(t *testing.T) {
	b := bus.NewBus(8)
	m := NewMachine(b, timex.System{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		m.Run(ctx, DefaultTick)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestModel_KeysReachMachine(t *testing.T) {
	b, clk, m := newMachine(t)
	model := NewModel(b)

	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Step()
	assert.Equal(t, 1, m.Dispatcher().Index())

	clk.Advance(100 * time.Millisecond)
	m.Step()
	clk.Advance(100 * time.Millisecond)
	model.Update(keyRune('k'))
	m.Step()
	assert.Equal(t, 0, m.Dispatcher().Index())

	model.Update(keyRune('r'))
	m.Step()
	assert.Equal(t, RadioFail, m.RadioMode())
	model.Update(keyRune('r'))
	m.Step()
	assert.Equal(t, RadioOK, m.RadioMode())
}

func TestModel_RendersMirroredRows(t *testing.T) {
	b, _, m := newMachine(t)
	model := NewModel(b)
	model.code = func() uint32 { return 0xA1B2C3D4 }

	// Retained rows arrive as soon as the model subscribes.
	model.lcd.Drain()
	assert.Equal(t, [2]string{"> IR Tools", "  Sub-GHz      v"}, model.Rows())

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Step()
	for i := 0; i < 2; i++ {
		select {
		case msg := <-model.lcd.Channel():
			model.Update(lcdMsg{msg})
		case <-time.After(time.Second):
			t.Fatal("no row update")
		}
	}
	assert.Equal(t, "IR Receiver", model.Rows()[0])

	model.Update(keyRune('i'))
	view := model.View()
	assert.Contains(t, view, "IR Receiver")
	assert.Contains(t, view, "last ir 0xA1B2C3D4")
	assert.Contains(t, view, "radio ok")
}

func TestModel_Quit(t *testing.T) {
	b, _, _ := newMachine(t)
	model := NewModel(b)
	_, cmd := model.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestParseRadioMode(t *testing.T) {
	for _, s := range []string{"ok", "fail", "absent"} {
		m, ok := ParseRadioMode(s)
		require.True(t, ok)
		assert.Equal(t, s, m.String())
	}
	_, ok := ParseRadioMode("flaky")
	assert.False(t, ok)
}
