package cc1101

import "pocket32-go/x/conv"

// Status is a negative driver status code. It implements error so the
// caller can show the number on a small display.
type Status int16

const (
	StatusChipNotFound       Status = -2
	StatusInvalidFrequency   Status = -12
	StatusInvalidOutputPower Status = -13
	StatusInvalidBitRate     Status = -101
	StatusInvalidBandwidth   Status = -104
	StatusNotReceiving       Status = -1000
)

func (s Status) Error() string {
	var buf [24]byte
	return string(conv.AppendInt(append(buf[:0], "cc1101: status "...), int64(s)))
}

// StatusCode exposes the raw number.
func (s Status) StatusCode() int16 { return int16(s) }
