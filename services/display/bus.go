package display

import (
	"pocket32-go/bus"
	"pocket32-go/types"
)

// TopicLCD prefixes retained row updates: ui/lcd/<row>.
var TopicLCD = bus.T("ui", "lcd")

// Mirror publishes each row as a retained string on the bus, so observers
// that attach late still see the current screen.
type Mirror struct {
	conn       *bus.Connection
	cols, rows int
}

var _ types.Display = (*Mirror)(nil)

func NewMirror(conn *bus.Connection, cols, rows int) *Mirror {
	return &Mirror{conn: conn, cols: cols, rows: rows}
}

func (m *Mirror) Size() (int, int) { return m.cols, m.rows }

func (m *Mirror) WriteLine(row int, text []byte) error {
	m.conn.Publish(m.conn.NewMessage(TopicLCD.Append(row), string(text), true))
	return nil
}
