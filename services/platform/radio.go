package platform

import (
	"pocket32-go/drivers/cc1101"
	"pocket32-go/types"
)

// Radio presents a CC1101 as a types.Radio.
type Radio struct {
	dev *cc1101.Device
}

var _ types.Radio = (*Radio)(nil)

func NewRadio(dev *cc1101.Device) *Radio { return &Radio{dev: dev} }

func (r *Radio) Begin(cfg types.RadioConfig) error {
	return r.dev.Begin(cc1101.Config{
		FrequencyKHz:   cfg.FrequencyKHz,
		BitRateBps:     cfg.BitRateBps,
		RxBandwidthHz:  cfg.RxBandwidthHz,
		OutputPowerDBm: cfg.OutputPowerDBm,
	})
}

func (r *Radio) SetFrequency(kHz uint32) error { return r.dev.SetFrequency(kHz) }
func (r *Radio) RSSI() (int16, error)          { return r.dev.RSSI() }
