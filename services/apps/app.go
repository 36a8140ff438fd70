// Package apps holds the tool modes reachable from the main menu.
//
// Each variant keeps its own state, reset by Begin and advanced by Update.
// Both run on the UI loop and must return promptly.
package apps

import (
	"time"

	"pocket32-go/services/display"
	"pocket32-go/services/input"
	"pocket32-go/types"
	"pocket32-go/x/timex"
)

// App is one tool mode.
type App interface {
	// Begin is called once on entry and renders the initial status.
	Begin(env *Env)
	// Update is called once per tick while the app is active.
	Update(env *Env)
}

// Env is the application context owned by the run loop.
type Env struct {
	Screen *display.Screen
	Clock  timex.Clock
	Boot   time.Time

	// Input holds the press edges confirmed on the current tick.
	Input input.Events

	IR    types.Optional[types.IRReceiver]
	Radio types.Optional[types.Radio]
}

// Uptime is the time since boot.
func (e *Env) Uptime() time.Duration { return e.Clock.Now().Sub(e.Boot) }

// ID names an app variant.
type ID uint8

const (
	IR ID = iota
	SubGHz
	Utils
	Settings

	Count
)

func (id ID) String() string {
	switch id {
	case IR:
		return "ir"
	case SubGHz:
		return "subghz"
	case Utils:
		return "utils"
	case Settings:
		return "settings"
	default:
		return "unknown"
	}
}

// Registry holds one instance per variant, indexed by ID.
type Registry [Count]App

// NewRegistry builds fresh instances of every variant.
func NewRegistry() Registry {
	return Registry{
		IR:       &IRApp{},
		SubGHz:   &SubGHzApp{},
		Utils:    &UtilsApp{},
		Settings: &SettingsApp{},
	}
}
