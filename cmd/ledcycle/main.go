//go:build tinygo

package main

import (
	"machine"
	"time"

	"pocket32-go/services/ledcycle"
)

const dataPin = machine.Pin(2)

func main() {
	time.Sleep(200 * time.Millisecond)
	println("[led] boot")

	cfg := ledcycle.DefaultConfig
	c, err := ledcycle.New(ledcycle.NewStrip(dataPin), cfg)
	if err != nil {
		println("[led] config:", err.Error())
		return
	}
	if err := c.Clear(); err != nil {
		println("[led] clear:", err.Error())
	}
	// Poll faster than the period so a slow write only delays one step.
	tick := time.NewTicker(cfg.Period / 10)
	defer tick.Stop()
	for now := range tick.C {
		if _, err := c.Tick(now); err != nil {
			println("[led] write:", err.Error())
		}
	}
}
