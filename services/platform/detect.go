package platform

import (
	"io"

	"pocket32-go/errcode"
	"pocket32-go/services/display"
	"pocket32-go/types"
)

// Hardware opens the board's peripherals. Each Open call is made at most
// once, and only when the matching feature is switched on.
type Hardware interface {
	OpenLCD(b Board) (types.Display, error)
	OpenIR(b Board) (types.IRReceiver, error)
	OpenRadio(b Board) (types.Radio, error)
	// Log is the serial log stream; it may be nil.
	Log(b Board) io.Writer
}

// Peripherals are the resolved handles for one run.
type Peripherals struct {
	Display types.Display
	IR      types.Optional[types.IRReceiver]
	Radio   types.Optional[types.Radio]
	Log     io.Writer
}

// Detect resolves the optional peripherals of b. A missing LCD falls back
// to status lines on the serial log; with no log either, lines are dropped.
func Detect(b Board, hw Hardware) Peripherals {
	var p Peripherals
	if b.Features.SerialLog {
		p.Log = hw.Log(b)
	}
	if p.Log == nil {
		p.Log = io.Discard
	}

	lcd := feature(b.Features.LCD, func() (types.Display, error) { return hw.OpenLCD(b) })
	if d, ok := lcd.Get(); ok {
		p.Display = d
		println("[platform] lcd ok addr=", b.LCDAddr)
	} else {
		p.Display = display.NewConsole(p.Log, cols(b), rows(b))
		println("[platform] lcd absent, status on serial:", lcd.Err().Error())
	}

	p.IR = feature(b.Features.IR, func() (types.IRReceiver, error) { return hw.OpenIR(b) })
	report("ir", p.IR.Err())

	p.Radio = feature(b.Features.Radio, func() (types.Radio, error) { return hw.OpenRadio(b) })
	report("radio", p.Radio.Err())

	return p
}

func feature[T any](on bool, open func() (T, error)) types.Optional[T] {
	if !on {
		return types.Absent[T](errcode.Unavailable)
	}
	return types.Probe(open)
}

func report(name string, err error) {
	if err == nil {
		println("[platform]", name, "ok")
		return
	}
	println("[platform]", name, "absent:", err.Error())
}

func cols(b Board) int {
	if b.LCDCols > 0 {
		return b.LCDCols
	}
	return 16
}

func rows(b Board) int {
	if b.LCDRows > 0 {
		return b.LCDRows
	}
	return 2
}
