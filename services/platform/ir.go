package platform

import "pocket32-go/types"

// IRQueue hands codes from the receiver callback to the UI loop through a
// single slot. A code arriving while the slot is full replaces it.
type IRQueue struct {
	ch chan uint32
}

var _ types.IRReceiver = (*IRQueue)(nil)

func NewIRQueue() *IRQueue { return &IRQueue{ch: make(chan uint32, 1)} }

// Push never blocks.
func (q *IRQueue) Push(code uint32) {
	for {
		select {
		case q.ch <- code:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

func (q *IRQueue) Poll() (uint32, bool) {
	select {
	case c := <-q.ch:
		return c, true
	default:
		return 0, false
	}
}
