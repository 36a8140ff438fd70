//go:build esp32 || rp2040

package main

import (
	"time"

	"pocket32-go/services/apps"
	"pocket32-go/services/display"
	"pocket32-go/services/heartbeat"
	"pocket32-go/services/input"
	"pocket32-go/services/platform"
	"pocket32-go/services/ui"
	"pocket32-go/x/timex"
)

func main() {
	// Allow the serial console to attach before we print.
	time.Sleep(200 * time.Millisecond)
	println("[main] boot")

	board, periph, pins := platform.Open()
	clock := timex.System{}
	env := &apps.Env{
		Screen: display.New(periph.Display),
		Clock:  clock,
		Boot:   clock.Now(),
		IR:     periph.IR,
		Radio:  periph.Radio,
	}

	d := ui.NewDispatcher(env, input.NewSet(pins, clock), nil)
	d.Boot(board.Banner)
	time.Sleep(500 * time.Millisecond)
	d.Start()
	println("[main] menu ready")

	hb := heartbeat.New(clock, heartbeat.DefaultInterval)
	tick := time.NewTicker(ui.TickPeriod)
	defer tick.Stop()
	for range tick.C {
		d.Tick()
		if hb.Due() {
			println("[hb] #", hb.Count(), "up", int(env.Uptime()/time.Second), "s mode", d.Mode().String(),
				"lcd errs", env.Screen.WriteErrors())
		}
	}
}
