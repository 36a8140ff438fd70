// Package sim runs the pocket tool UI on a host against simulated
// peripherals. Inputs arrive as bus messages and the screen is mirrored to
// retained bus topics, so a terminal front end and a script runner drive
// the same Machine.
package sim

import (
	"context"
	"time"

	"pocket32-go/bus"
	"pocket32-go/errcode"
	"pocket32-go/services/apps"
	"pocket32-go/services/display"
	"pocket32-go/services/input"
	"pocket32-go/services/platform"
	"pocket32-go/services/ui"
	"pocket32-go/types"
	"pocket32-go/x/timex"
)

// Topics consumed by the Machine.
var (
	TopicButton = bus.T("sim", "button") // sim/button/<name>, payload time.Duration hold
	TopicIR     = bus.T("sim", "ir")     // payload uint32 code
	TopicRadio  = bus.T("sim", "radio")  // payload RadioMode
)

// TopicLCDRows matches every mirrored screen row.
var TopicLCDRows = display.TopicLCD.Append(bus.AnyOne)

const (
	Banner    = "Pocket Sim"
	BootDelay = 500 * time.Millisecond

	// DefaultHold keeps a button down long enough to clear the debounce
	// window on both edges.
	DefaultHold = 2 * input.DebounceWindow
)

// Machine is the simulated device. All methods except the bus inputs must
// be called from the goroutine that calls Step.
type Machine struct {
	clock timex.Clock
	conn  *bus.Connection

	pad   Pad
	radio Radio
	ir    *platform.IRQueue
	mode  RadioMode

	env  *apps.Env
	disp *ui.Dispatcher

	buttons *bus.Subscription
	codes   *bus.Subscription
	radios  *bus.Subscription

	holds map[*Pin]*holdState
}

// holdState tracks one simulated button. Presses that arrive while it is down
// queue behind the current one and start after a released gap of
// DefaultHold, so each is seen as a separate debounced press.
type holdState struct {
	down  bool
	until time.Time // release deadline while down, earliest next press otherwise
	queue []time.Duration
}

func NewMachine(b *bus.Bus, clock timex.Clock) *Machine {
	m := &Machine{
		clock:    clock,
		conn:     b.NewConnection("sim"),
		ir:       platform.NewIRQueue(),
		holds:    make(map[*Pin]*holdState),
	}
	m.buttons = m.conn.Subscribe(TopicButton.Append(bus.AnyOne))
	m.codes = m.conn.Subscribe(TopicIR)
	m.radios = m.conn.Subscribe(TopicRadio)

	m.env = &apps.Env{
		Screen: display.New(display.NewMirror(m.conn, 16, 2)),
		Clock:  clock,
		Boot:   clock.Now(),
		IR:     types.Present[types.IRReceiver](m.ir),
	}
	m.setRadio(RadioOK)
	m.disp = ui.NewDispatcher(m.env, input.NewSet(m.pad.Pins(), clock), nil)
	return m
}

// Boot shows the banner; Start enters the menu.
func (m *Machine) Boot()  { m.disp.Boot(Banner) }
func (m *Machine) Start() { m.disp.Start() }

// Step applies pending bus inputs, releases buttons whose hold elapsed,
// starts queued presses and runs one dispatcher tick.
func (m *Machine) Step() {
	m.drain()
	now := m.clock.Now()
	for p, h := range m.holds {
		if now.Before(h.until) {
			continue
		}
		switch {
		case h.down:
			p.Release()
			h.down, h.until = false, now.Add(DefaultHold)
		case len(h.queue) > 0:
			p.Press()
			h.down, h.until = true, now.Add(h.queue[0])
			h.queue = h.queue[1:]
		default:
			delete(m.holds, p)
		}
	}
	m.disp.Tick()
}

// Run boots, waits BootDelay, then steps every tick until ctx ends.
func (m *Machine) Run(ctx context.Context, tick time.Duration) {
	m.Boot()
	select {
	case <-ctx.Done():
		return
	case <-time.After(BootDelay):
	}
	m.Start()

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Step()
		}
	}
}

// Close drops the machine's subscriptions.
func (m *Machine) Close() { m.conn.Disconnect() }

func (m *Machine) Dispatcher() *ui.Dispatcher { return m.disp }
func (m *Machine) Radio() *Radio             { return &m.radio }
func (m *Machine) RadioMode() RadioMode      { return m.mode }

func (m *Machine) drain() {
	for {
		select {
		case msg, ok := <-m.buttons.Channel():
			if !ok {
				return
			}
			m.onButton(msg)
		case msg, ok := <-m.codes.Channel():
			if !ok {
				return
			}
			if code, ok := msg.Payload.(uint32); ok {
				m.ir.Push(code)
			}
		case msg, ok := <-m.radios.Channel():
			if !ok {
				return
			}
			if mode, ok := msg.Payload.(RadioMode); ok {
				m.setRadio(mode)
			}
		default:
			return
		}
	}
}

func (m *Machine) onButton(msg *bus.Message) {
	if msg.Topic.Len() != TopicButton.Len()+1 {
		return
	}
	name, _ := msg.Topic.At(TopicButton.Len()).(string)
	p, ok := m.pad.ByName(name)
	if !ok {
		return
	}
	hold, _ := msg.Payload.(time.Duration)
	if hold <= 0 {
		hold = DefaultHold
	}
	h := m.holds[p]
	if h == nil {
		h = &holdState{}
		m.holds[p] = h
	}
	h.queue = append(h.queue, hold)
}

// setRadio swaps the radio handle in the shared context. Absent mirrors a
// board without the transceiver fitted.
func (m *Machine) setRadio(mode RadioMode) {
	m.mode = mode
	switch mode {
	case RadioAbsent:
		m.env.Radio = types.Absent[types.Radio](errcode.NoDevice)
	default:
		m.radio.SetFail(mode == RadioFail)
		m.env.Radio = types.Present[types.Radio](&m.radio)
	}
}

// Inputs publish on behalf of a front end. They are safe from any goroutine.

func PressButton(conn *bus.Connection, name string, hold time.Duration) {
	conn.Publish(conn.NewMessage(TopicButton.Append(name), hold, false))
}

func SendIR(conn *bus.Connection, code uint32) {
	conn.Publish(conn.NewMessage(TopicIR, code, false))
}

func SetRadio(conn *bus.Connection, mode RadioMode) {
	conn.Publish(conn.NewMessage(TopicRadio, mode, false))
}
