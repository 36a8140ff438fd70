package apps

import (
	"errors"

	"pocket32-go/types"
	"pocket32-go/x/conv"
	"pocket32-go/x/mathx"
)

// Presets are the selectable carrier frequencies in kHz.
var Presets = [...]uint32{315_000, 433_920, 868_350, 915_000}

// DefaultPreset indexes 433.92 MHz.
const DefaultPreset = 1

// Receive operating point applied on every (re)initialisation.
const (
	radioBitRateBps   = 4_800
	radioBandwidthHz  = 58_000
	radioOutputPowerD = 10
)

// SubGHzApp tunes the transceiver through Presets and shows signal strength.
type SubGHzApp struct {
	idx      int
	ready    bool
	status   error
	rssi     int16
	haveRSSI bool
	line     []byte
}

func (a *SubGHzApp) Begin(env *Env) {
	a.idx = DefaultPreset
	a.ready, a.status = false, nil
	a.rssi, a.haveRSSI = 0, false
	env.Screen.Show("Sub-GHz", "Init...")
	switch {
	case a.init(env):
		env.Screen.Line(1, "Ready")
	case !env.Radio.Available():
		env.Screen.Line(1, "No radio")
	default:
		env.Screen.Line(1, "Init fail")
	}
}

func (a *SubGHzApp) Update(env *Env) {
	ev := env.Input
	if ev.Up {
		a.idx = mathx.Step(a.idx, 1, len(Presets))
		a.retune(env)
	}
	if ev.Down {
		a.idx = mathx.Step(a.idx, -1, len(Presets))
		a.retune(env)
	}
	if ev.Select {
		a.init(env)
	}

	a.line = append(a.line[:0], "Sub "...)
	a.line = conv.AppendDecimal(a.line, int64(a.Frequency()/10), 2)
	a.line = append(a.line, "MHz"...)
	env.Screen.LineBytes(0, a.line)

	r, ok := env.Radio.Get()
	if !ok {
		env.Screen.Line(1, "No radio")
		return
	}
	if !a.ready {
		a.line = append(a.line[:0], "Init fail "...)
		a.line = conv.AppendInt(a.line, int64(statusCode(a.status)))
		env.Screen.LineBytes(1, a.line)
		return
	}
	if dBm, err := r.RSSI(); err == nil {
		a.rssi, a.haveRSSI = dBm, true
		a.line = append(a.line[:0], "RSSI "...)
		a.line = conv.AppendInt(a.line, int64(dBm))
		a.line = append(a.line, " dBm"...)
		env.Screen.LineBytes(1, a.line)
		return
	}
	env.Screen.Line(1, "Ready")
}

// Index is the selected preset.
func (a *SubGHzApp) Index() int { return a.idx }

// Frequency is the selected carrier in kHz.
func (a *SubGHzApp) Frequency() uint32 { return Presets[a.idx] }

// Ready reports whether the last initialisation succeeded.
func (a *SubGHzApp) Ready() bool { return a.ready }

// RSSI is the last reading taken while ready.
func (a *SubGHzApp) RSSI() (dBm int16, ok bool) { return a.rssi, a.haveRSSI }

// Status is the error from the last initialisation or retune, if any.
func (a *SubGHzApp) Status() error { return a.status }

func (a *SubGHzApp) init(env *Env) bool {
	r, ok := env.Radio.Get()
	if !ok {
		a.ready, a.status = false, env.Radio.Err()
		return false
	}
	err := r.Begin(types.RadioConfig{
		FrequencyKHz:   a.Frequency(),
		BitRateBps:     radioBitRateBps,
		RxBandwidthHz:  radioBandwidthHz,
		OutputPowerDBm: radioOutputPowerD,
	})
	a.ready, a.status = err == nil, err
	return a.ready
}

func (a *SubGHzApp) retune(env *Env) {
	if !a.ready {
		return
	}
	r, ok := env.Radio.Get()
	if !ok {
		return
	}
	if err := r.SetFrequency(a.Frequency()); err != nil {
		a.ready, a.status = false, err
	}
}

// statusCode extracts a numeric driver status, 0 for none and -1 otherwise.
func statusCode(err error) int16 {
	if err == nil {
		return 0
	}
	var sc interface{ StatusCode() int16 }
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return -1
}
