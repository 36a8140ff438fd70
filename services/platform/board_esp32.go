//go:build esp32

package platform

import (
	"io"
	"machine"
)

var Selected = ESP32

func i2cBus(p I2CPins) (*machine.I2C, error) {
	bus := machine.I2C0
	err := bus.Configure(machine.I2CConfig{
		Frequency: p.Hz,
		SDA:       machine.Pin(p.SDA),
		SCL:       machine.Pin(p.SCL),
	})
	return bus, err
}

// VSPI is SPI1 in machine numbering.
func spiBus(p SPIPins) (*machine.SPI, error) {
	bus := machine.SPI1
	err := bus.Configure(machine.SPIConfig{
		Frequency: p.Hz,
		SCK:       machine.Pin(p.SCK),
		SDO:       machine.Pin(p.MOSI),
		SDI:       machine.Pin(p.MISO),
	})
	return bus, err
}

func serialLog(UARTPins) io.Writer { return machine.Serial }
