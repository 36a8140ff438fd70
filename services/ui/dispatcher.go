// Package ui switches between the main menu and the active app.
package ui

import (
	"time"

	"pocket32-go/services/apps"
	"pocket32-go/services/input"
	"pocket32-go/x/mathx"
	"pocket32-go/x/strx"
)

// TickPeriod is the loop period the firmware calls Tick at.
const TickPeriod = 10 * time.Millisecond

// Mode is the dispatcher state.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeApp
)

func (m Mode) String() string {
	if m == ModeApp {
		return "app"
	}
	return "menu"
}

// Poller yields the press edges for one tick. *input.Set satisfies it.
type Poller interface {
	Poll() input.Events
}

var _ Poller = (*input.Set)(nil)

// Dispatcher owns the UI state and the app instances. Tick must be called
// from a single goroutine.
type Dispatcher struct {
	env  *apps.Env
	in   Poller
	menu []MenuItem
	apps apps.Registry

	mode   Mode
	idx    int
	active apps.ID

	line []byte
}

// NewDispatcher starts in menu mode at the first item. A nil or empty menu
// selects DefaultMenu.
func NewDispatcher(env *apps.Env, in Poller, menu []MenuItem) *Dispatcher {
	if len(menu) == 0 {
		menu = DefaultMenu
	}
	return &Dispatcher{
		env:  env,
		in:   in,
		menu: menu,
		apps: apps.NewRegistry(),
		line: make([]byte, 0, env.Screen.Cols()),
	}
}

// DefaultBanner is shown when the board profile names none.
const DefaultBanner = "Pocket32"

// Boot shows the start-up banner.
func (d *Dispatcher) Boot(banner string) {
	d.env.Screen.Show(strx.Coalesce(banner, DefaultBanner), "Booting...")
}

// Start repaints the whole screen with the menu.
func (d *Dispatcher) Start() {
	d.mode = ModeMenu
	d.env.Screen.Invalidate()
	d.renderMenu()
}

// Tick polls the buttons once and advances the state machine.
func (d *Dispatcher) Tick() {
	ev := d.in.Poll()
	d.env.Input = ev

	switch d.mode {
	case ModeMenu:
		if ev.Up {
			d.idx = mathx.Step(d.idx, -1, len(d.menu))
			d.renderMenu()
		}
		if ev.Down {
			d.idx = mathx.Step(d.idx, 1, len(d.menu))
			d.renderMenu()
		}
		if ev.Select {
			d.enter(d.menu[d.idx].App)
		}
	case ModeApp:
		d.apps[d.active].Update(d.env)
		if ev.Back {
			d.mode = ModeMenu
			d.renderMenu()
		}
	}
}

func (d *Dispatcher) enter(id apps.ID) {
	d.mode = ModeApp
	d.active = id
	d.apps[id].Begin(d.env)
}

func (d *Dispatcher) Mode() Mode { return d.mode }

// Index is the selected menu item.
func (d *Dispatcher) Index() int { return d.idx }

// Active is the running app; meaningful only in ModeApp.
func (d *Dispatcher) Active() apps.ID { return d.active }

// App returns the instance for id.
func (d *Dispatcher) App(id apps.ID) apps.App { return d.apps[id] }

// Env exposes the context shared with the apps.
func (d *Dispatcher) Env() *apps.Env { return d.env }
