//go:build rp2040

package platform

import (
	"io"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

var Selected = Pico

func i2cBus(p I2CPins) (*machine.I2C, error) {
	bus := machine.I2C0
	if p.ID == "i2c1" {
		bus = machine.I2C1
	}
	err := bus.Configure(machine.I2CConfig{
		Frequency: p.Hz,
		SDA:       machine.Pin(p.SDA),
		SCL:       machine.Pin(p.SCL),
	})
	return bus, err
}

func spiBus(p SPIPins) (*machine.SPI, error) {
	bus := machine.SPI0
	if p.ID == "spi1" {
		bus = machine.SPI1
	}
	err := bus.Configure(machine.SPIConfig{
		Frequency: p.Hz,
		SCK:       machine.Pin(p.SCK),
		SDO:       machine.Pin(p.MOSI),
		SDI:       machine.Pin(p.MISO),
	})
	return bus, err
}

// serialLog routes status lines to a uartx port. Defaults inside uartx
// apply when Baud is zero.
func serialLog(p UARTPins) io.Writer {
	hw := uartx.UART0
	if p.ID == "uart1" {
		hw = uartx.UART1
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	}); err != nil {
		println("[platform] serial log:", err.Error())
		return nil
	}
	return hw
}
