package types

// Peripheral contracts consumed by the UI and apps. Board wiring in
// services/platform (and the simulator) supplies implementations.

// InputPin is a raw digital input. Get reports the electrical level
// (true == high); active-low inversion happens in the button layer.
type InputPin interface {
	Get() bool
}

// Display is a character display addressed by whole rows.
type Display interface {
	Size() (cols, rows int)
	// WriteLine replaces row with text. text never exceeds cols.
	WriteLine(row int, text []byte) error
}

// IRReceiver hands decoded codes to the polling loop.
// Poll must not block; ok is false when nothing new arrived.
type IRReceiver interface {
	Poll() (code uint32, ok bool)
}

// RadioConfig is the operating point applied on (re)initialisation.
type RadioConfig struct {
	FrequencyKHz   uint32
	BitRateBps     uint32
	RxBandwidthHz  uint32
	OutputPowerDBm int8
}

// Radio is a sub-GHz transceiver.
type Radio interface {
	// Begin resets the chip, applies cfg and leaves it receiving.
	Begin(cfg RadioConfig) error
	SetFrequency(kHz uint32) error
	RSSI() (dBm int16, err error)
}
