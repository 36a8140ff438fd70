package apps

import (
	"time"

	"pocket32-go/x/conv"
)

// UtilsApp shows the running time since boot.
type UtilsApp struct {
	line []byte
}

func (a *UtilsApp) Begin(env *Env) {
	env.Screen.Line(0, "Utilities")
	a.render(env)
}

func (a *UtilsApp) Update(env *Env) { a.render(env) }

func (a *UtilsApp) render(env *Env) {
	a.line = append(a.line[:0], "Uptime "...)
	a.line = conv.AppendUint(a.line, uint64(env.Uptime()/time.Second))
	a.line = append(a.line, 's')
	env.Screen.LineBytes(1, a.line)
}
