package sim

import (
	"sync/atomic"

	"pocket32-go/drivers/cc1101"
	"pocket32-go/services/input"
	"pocket32-go/types"
)

// Pin is a simulated active-low button input. It idles high.
type Pin struct {
	low atomic.Bool
}

func (p *Pin) Get() bool { return !p.low.Load() }
func (p *Pin) Press()    { p.low.Store(true) }
func (p *Pin) Release()  { p.low.Store(false) }

// Pad is the four navigation buttons.
type Pad struct {
	Up, Down, Select, Back Pin
}

// ButtonNames lists the accepted button names in pad order.
var ButtonNames = []string{"up", "down", "select", "back"}

func (p *Pad) Pins() input.Pins {
	return input.Pins{Up: &p.Up, Down: &p.Down, Select: &p.Select, Back: &p.Back}
}

// ByName resolves a button name; "ok" aliases select.
func (p *Pad) ByName(name string) (*Pin, bool) {
	switch name {
	case "up":
		return &p.Up, true
	case "down":
		return &p.Down, true
	case "select", "ok":
		return &p.Select, true
	case "back":
		return &p.Back, true
	}
	return nil, false
}

// RadioMode selects how the simulated transceiver behaves.
type RadioMode uint8

const (
	RadioOK RadioMode = iota
	RadioFail
	RadioAbsent
)

func (m RadioMode) String() string {
	switch m {
	case RadioOK:
		return "ok"
	case RadioFail:
		return "fail"
	case RadioAbsent:
		return "absent"
	}
	return "unknown"
}

// ParseRadioMode accepts the names printed by String.
func ParseRadioMode(s string) (RadioMode, bool) {
	for _, m := range []RadioMode{RadioOK, RadioFail, RadioAbsent} {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Radio stands in for a CC1101. In fail mode every call reports a chip that
// does not answer. The reported RSSI depends only on the tuned frequency.
type Radio struct {
	fail  atomic.Bool
	freq  uint32
	rx    bool
	begun int
}

var _ types.Radio = (*Radio)(nil)

func (r *Radio) SetFail(fail bool) { r.fail.Store(fail) }

func (r *Radio) Begin(cfg types.RadioConfig) error {
	r.begun++
	r.rx = false
	if r.fail.Load() {
		return cc1101.StatusChipNotFound
	}
	if err := r.SetFrequency(cfg.FrequencyKHz); err != nil {
		return err
	}
	r.rx = true
	return nil
}

func (r *Radio) SetFrequency(kHz uint32) error {
	if r.fail.Load() {
		return cc1101.StatusChipNotFound
	}
	if !cc1101.ValidFrequency(kHz) {
		return cc1101.StatusInvalidFrequency
	}
	r.freq = kHz
	return nil
}

func (r *Radio) RSSI() (int16, error) {
	if r.fail.Load() {
		return 0, cc1101.StatusChipNotFound
	}
	if !r.rx {
		return 0, cc1101.StatusNotReceiving
	}
	return -60 - int16(r.freq/25_000), nil
}

// Frequency is the last tuned carrier in kHz.
func (r *Radio) Frequency() uint32 { return r.freq }

// Begins counts Begin calls.
func (r *Radio) Begins() int { return r.begun }
