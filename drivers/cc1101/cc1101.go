// Package cc1101 drives the TI CC1101 sub-GHz transceiver over SPI.
//
// Scope is receive-side bring-up: chip detection, carrier frequency, data
// rate, channel bandwidth, PA level, and RSSI readout.
package cc1101

import (
	"time"

	"pocket32-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Pin is the chip-select line (machine.Pin satisfies it).
type Pin interface {
	High()
	Low()
}

// Config is the operating point applied by Begin.
type Config struct {
	FrequencyKHz   uint32
	BitRateBps     uint32
	RxBandwidthHz  uint32
	OutputPowerDBm int8
}

// PA level used until SetOutputPower is called.
const defaultPowerDBm = 10

// Reset waits up to readyPolls*readyPollEvery for CHIP_RDYn to drop.
const (
	readyPolls     = 100
	readyPollEvery = 100 * time.Microsecond
)

type Device struct {
	bus drivers.SPI
	cs  Pin

	freqKHz  uint32
	powerDBm int8
	drateE   byte // MDMCFG4[3:0]
	bwBits   byte // MDMCFG4[7:4]
	rx       bool

	w [2]byte
	r [2]byte
}

func New(bus drivers.SPI, cs Pin) *Device {
	cs.High()
	return &Device{bus: bus, cs: cs, powerDBm: defaultPowerDBm}
}

// Begin resets the chip, verifies it answers, applies cfg and enters RX.
func (d *Device) Begin(cfg Config) error {
	d.rx = false
	if err := d.Reset(); err != nil {
		return err
	}
	_, ver, err := d.Version()
	if err != nil {
		return err
	}
	if !KnownVersion(ver) {
		return StatusChipNotFound
	}
	for _, kv := range baseline {
		if err := d.writeReg(kv[0], kv[1]); err != nil {
			return err
		}
	}
	if err := d.SetFrequency(cfg.FrequencyKHz); err != nil {
		return err
	}
	if err := d.SetBitRate(cfg.BitRateBps); err != nil {
		return err
	}
	if err := d.SetRxBandwidth(cfg.RxBandwidthHz); err != nil {
		return err
	}
	if err := d.SetOutputPower(cfg.OutputPowerDBm); err != nil {
		return err
	}
	if err := d.strobe(strobeSRX); err != nil {
		return err
	}
	d.rx = true
	return nil
}

// KnownVersion reports whether ver is a VERSION register value of a
// CC1101 or a common clone.
func KnownVersion(ver uint8) bool {
	switch ver {
	case versionCurrent, versionLegacy, versionClone:
		return true
	}
	return false
}

// Reset pulses chip select, issues SRES and waits for the crystal to
// settle. A chip that never reports ready is treated as absent.
func (d *Device) Reset() error {
	d.cs.Low()
	time.Sleep(time.Millisecond)
	d.cs.High()
	time.Sleep(time.Millisecond)
	if err := d.strobe(strobeSRES); err != nil {
		return err
	}
	for i := 0; i < readyPolls; i++ {
		st, err := d.strobeStatus(strobeSNOP)
		if err != nil {
			return err
		}
		if st&statusChipRdyN == 0 {
			return nil
		}
		time.Sleep(readyPollEvery)
	}
	return StatusChipNotFound
}

// Version returns PARTNUM and VERSION.
func (d *Device) Version() (part, version uint8, err error) {
	if part, err = d.readStatus(regPARTNUM); err != nil {
		return 0, 0, err
	}
	version, err = d.readStatus(regVERSION)
	return part, version, err
}

// Frequency returns the last programmed carrier in kHz.
func (d *Device) Frequency() uint32 { return d.freqKHz }

// SetFrequency programs the carrier. Valid bands are 300-348, 387-464 and
// 779-928 MHz. The PA level is re-applied for the new band.
func (d *Device) SetFrequency(kHz uint32) error {
	if bandOf(kHz) < 0 {
		return StatusInvalidFrequency
	}
	if err := d.strobe(strobeSIDLE); err != nil {
		return err
	}
	word := FrequencyWord(kHz)
	for i, reg := range [3]byte{regFREQ2, regFREQ1, regFREQ0} {
		if err := d.writeReg(reg, byte(word>>(16-8*uint(i)))); err != nil {
			return err
		}
	}
	d.freqKHz = kHz
	if err := d.writePA(); err != nil {
		return err
	}
	if d.rx {
		return d.strobe(strobeSRX)
	}
	return nil
}

// SetBitRate programs DRATE_E/DRATE_M for bps in [600, 500000].
func (d *Device) SetBitRate(bps uint32) error {
	e, m, ok := dataRate(bps)
	if !ok {
		return StatusInvalidBitRate
	}
	d.drateE = e
	if err := d.writeReg(regMDMCFG4, d.bwBits<<4|d.drateE); err != nil {
		return err
	}
	return d.writeReg(regMDMCFG3, m)
}

// SetRxBandwidth picks the closest channel filter to hz in [58, 813] kHz.
func (d *Device) SetRxBandwidth(hz uint32) error {
	if !mathx.Between(hz, 58_000, 813_000) {
		return StatusInvalidBandwidth
	}
	e, m := channelBandwidth(hz)
	d.bwBits = e<<2 | m
	return d.writeReg(regMDMCFG4, d.bwBits<<4|d.drateE)
}

// SetOutputPower selects one of the calibrated PA levels
// (-30, -20, -15, -10, 0, 5, 7, 10 dBm).
func (d *Device) SetOutputPower(dBm int8) error {
	if paIndex(dBm) < 0 {
		return StatusInvalidOutputPower
	}
	d.powerDBm = dBm
	if d.freqKHz == 0 {
		return nil
	}
	return d.writePA()
}

// RSSI returns the received signal strength in dBm. It is only meaningful
// while receiving.
func (d *Device) RSSI() (int16, error) {
	if !d.rx {
		return 0, StatusNotReceiving
	}
	raw, err := d.readStatus(regRSSI)
	if err != nil {
		return 0, err
	}
	return RSSIdBm(raw), nil
}

// ---- register access ----

func (d *Device) strobe(cmd byte) error {
	_, err := d.strobeStatus(cmd)
	return err
}

// strobeStatus issues cmd and returns the chip status byte clocked back.
func (d *Device) strobeStatus(cmd byte) (byte, error) {
	d.cs.Low()
	st, err := d.bus.Transfer(cmd)
	d.cs.High()
	return st, err
}

func (d *Device) writeReg(addr, v byte) error {
	d.w[0], d.w[1] = addr, v
	d.cs.Low()
	err := d.bus.Tx(d.w[:], d.r[:])
	d.cs.High()
	return err
}

func (d *Device) readStatus(addr byte) (byte, error) {
	d.w[0], d.w[1] = addr|hdrRead|hdrBurst, 0
	d.cs.Low()
	err := d.bus.Tx(d.w[:], d.r[:])
	d.cs.High()
	return d.r[1], err
}

func (d *Device) writePA() error {
	i := paIndex(d.powerDBm)
	b := bandOf(d.freqKHz)
	if i < 0 || b < 0 {
		return nil
	}
	return d.writeReg(regPATABLE, paTable[i].band[b])
}

// ---- pure helpers ----

// FrequencyWord is FREQ[23:0] for a carrier in kHz with a 26 MHz crystal.
func FrequencyWord(kHz uint32) uint32 {
	return uint32((uint64(kHz) * 1000 << 16) / fxoscHz)
}

// RSSIdBm converts the RSSI status register to dBm.
func RSSIdBm(raw byte) int16 {
	v := int16(raw)
	if v >= 128 {
		v -= 256
	}
	return v/2 - rssiOffset
}

// bandOf returns the PA table column for kHz, or -1 outside the chip bands.
// ValidFrequency reports whether kHz lies in a band the chip can tune.
func ValidFrequency(kHz uint32) bool { return bandOf(kHz) >= 0 }

func bandOf(kHz uint32) int {
	switch {
	case mathx.Between(kHz, 300_000, 348_000):
		return 0
	case mathx.Between(kHz, 387_000, 464_000):
		return 1
	case mathx.Between(kHz, 779_000, 891_500):
		return 2
	case mathx.Between(kHz, 891_501, 928_000):
		return 3
	}
	return -1
}

func paIndex(dBm int8) int {
	for i := range paTable {
		if paTable[i].dBm == dBm {
			return i
		}
	}
	return -1
}

// dataRate solves R = (256+M) * 2^E * fxosc / 2^28 for the smallest E.
func dataRate(bps uint32) (e, m byte, ok bool) {
	if bps < 600 || bps > 500_000 {
		return 0, 0, false
	}
	num := uint64(bps) << 28
	for exp := uint(0); exp < 16; exp++ {
		den := uint64(fxoscHz) << exp
		q := (num + den/2) / den
		if q < 512 {
			if q < 256 {
				return 0, 0, false
			}
			return byte(exp), byte(q - 256), true
		}
	}
	return 0, 0, false
}

// channelBandwidth picks CHANBW_E/M closest to hz, where
// BW = fxosc / (8 * (4+M) * 2^E).
func channelBandwidth(hz uint32) (e, m byte) {
	best := uint32(1<<32 - 1)
	for exp := byte(0); exp < 4; exp++ {
		for man := byte(0); man < 4; man++ {
			bw := uint32(fxoscHz / (8 * (4 + uint32(man)) << exp))
			diff := bw - hz
			if hz > bw {
				diff = hz - bw
			}
			if diff < best {
				best, e, m = diff, exp, man
			}
		}
	}
	return e, m
}
