package apps

import "pocket32-go/x/conv"

// IRApp counts received IR codes and shows the most recent one.
type IRApp struct {
	count uint32
	last  uint32
	seen  bool
	line  []byte
}

func (a *IRApp) Begin(env *Env) {
	a.count, a.last, a.seen = 0, 0, false
	env.Screen.Show("IR Receiver", "Waiting...")
}

func (a *IRApp) Update(env *Env) {
	rx, ok := env.IR.Get()
	if !ok {
		env.Screen.Line(1, "IR unavailable")
		return
	}
	if code, got := rx.Poll(); got {
		a.count++
		a.last = code
		a.seen = true
	}
	a.line = append(a.line[:0], "C:"...)
	a.line = conv.AppendUint(a.line, uint64(a.count))
	if a.seen {
		a.line = append(a.line, " 0x"...)
		a.line = conv.AppendHex32(a.line, a.last)
	} else {
		a.line = append(a.line, " Waiting"...)
	}
	env.Screen.LineBytes(1, a.line)
}

// Count is the number of codes received since Begin.
func (a *IRApp) Count() uint32 { return a.count }

// Last is the most recent code; ok is false before the first one.
func (a *IRApp) Last() (code uint32, ok bool) { return a.last, a.seen }
