//go:build tinygo

package ledcycle

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// NewStrip configures pin as an output and returns a WS2812B chain on it.
func NewStrip(pin machine.Pin) Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d := ws2812.New(pin)
	return &d
}
