package display

import (
	"pocket32-go/errcode"
	"pocket32-go/types"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// PCF8574 backpack bit that keeps the backlight on.
const backlightBit = 0x08

// LCD is an HD44780 character display behind a PCF8574 I2C backpack.
type LCD struct {
	dev   hd44780i2c.Device
	cols  int
	rows  int
	blank []byte
}

var _ types.Display = (*LCD)(nil)

// NewLCD probes addr on bus and initialises the controller. A missing
// backpack yields errcode.NoDevice.
func NewLCD(bus drivers.I2C, addr uint8, cols, rows int) (*LCD, error) {
	if cols <= 0 || rows <= 0 || cols > 40 || rows > 4 {
		return nil, errcode.InvalidParams
	}
	if err := bus.Tx(uint16(addr), []byte{backlightBit}, nil); err != nil {
		return nil, errcode.Wrap(errcode.NoDevice, "lcd probe", err)
	}
	d := &LCD{
		dev:   hd44780i2c.New(bus, addr),
		cols:  cols,
		rows:  rows,
		blank: make([]byte, cols),
	}
	for i := range d.blank {
		d.blank[i] = ' '
	}
	if err := d.dev.Configure(hd44780i2c.Config{Width: uint8(cols), Height: uint8(rows)}); err != nil {
		return nil, errcode.Wrap(errcode.NoDevice, "lcd configure", err)
	}
	d.dev.BacklightOn(true)
	d.dev.ClearDisplay()
	return d, nil
}

func (d *LCD) Size() (int, int) { return d.cols, d.rows }

// WriteLine blanks the row and prints text from column 0.
func (d *LCD) WriteLine(row int, text []byte) error {
	if row < 0 || row >= d.rows {
		return errcode.InvalidParams
	}
	d.dev.SetCursor(0, uint8(row))
	d.dev.Print(d.blank)
	d.dev.SetCursor(0, uint8(row))
	if len(text) > d.cols {
		text = text[:d.cols]
	}
	d.dev.Print(text)
	return nil
}
