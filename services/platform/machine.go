//go:build esp32 || rp2040

package platform

import (
	"io"
	"machine"

	"pocket32-go/drivers/cc1101"
	"pocket32-go/services/display"
	"pocket32-go/services/input"
	"pocket32-go/types"

	"tinygo.org/x/drivers/irremote"
)

type machineHW struct {
	ir irremote.ReceiverDevice
}

var _ Hardware = (*machineHW)(nil)

func (h *machineHW) OpenLCD(b Board) (types.Display, error) {
	bus, err := i2cBus(b.LCD)
	if err != nil {
		return nil, err
	}
	lcd, err := display.NewLCD(bus, b.LCDAddr, b.LCDCols, b.LCDRows)
	if err != nil {
		return nil, err
	}
	return lcd, nil
}

// OpenIR starts the NEC decoder. The pin interrupt pushes codes into a
// one-slot queue drained by the UI loop.
func (h *machineHW) OpenIR(b Board) (types.IRReceiver, error) {
	q := NewIRQueue()
	h.ir = irremote.NewReceiver(machine.Pin(b.IRPin))
	h.ir.Configure()
	h.ir.SetCommandHandler(func(d irremote.Data) { q.Push(d.Code) })
	return q, nil
}

func (h *machineHW) OpenRadio(b Board) (types.Radio, error) {
	bus, err := spiBus(b.Radio)
	if err != nil {
		return nil, err
	}
	cs := machine.Pin(b.Radio.CSN)
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	// The chip itself is checked by Begin, so a silent module surfaces as
	// an init failure the app can retry.
	return NewRadio(cc1101.New(bus, cs)), nil
}

func (h *machineHW) Log(b Board) io.Writer { return serialLog(b.Serial) }

func inputPin(n int) types.InputPin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return p
}

// Open wires the selected board: pull-up buttons and every optional
// peripheral the profile enables.
func Open() (Board, Peripherals, input.Pins) {
	b := Selected
	println("[platform] board", b.Name)
	pins := input.Pins{
		Up:     inputPin(b.Buttons.Up),
		Down:   inputPin(b.Buttons.Down),
		Select: inputPin(b.Buttons.Select),
		Back:   inputPin(b.Buttons.Back),
	}
	return b, Detect(b, &machineHW{}), pins
}
