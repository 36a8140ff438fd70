package types

import (
	"errors"
	"testing"

	"pocket32-go/errcode"
)

type stubIR struct{}

func (stubIR) Poll() (uint32, bool) { return 0, false }

func TestOptional_ZeroValueIsUnavailable(t *testing.T) {
	var o Optional[IRReceiver]
	if _, ok := o.Get(); ok {
		t.Fatal("zero Optional should be absent")
	}
	if errcode.Of(o.Err()) != errcode.Unavailable {
		t.Fatalf("Err = %v, want unavailable", o.Err())
	}
}

func TestProbe(t *testing.T) {
	ok := Probe(func() (IRReceiver, error) { return stubIR{}, nil })
	if !ok.Available() || ok.Err() != nil {
		t.Fatalf("expected present, err=%v", ok.Err())
	}

	nack := errors.New("nack")
	bad := Probe(func() (IRReceiver, error) { return nil, nack })
	if bad.Available() {
		t.Fatal("expected absent")
	}
	if !errors.Is(bad.Err(), nack) {
		t.Fatalf("Err = %v, want %v", bad.Err(), nack)
	}
}
