package sim

import (
	"pocket32-go/bus"
	"pocket32-go/services/display"
)

// LCD tracks the mirrored screen rows from the bus.
type LCD struct {
	sub  *bus.Subscription
	rows [2]string
}

func WatchLCD(conn *bus.Connection) *LCD {
	return &LCD{sub: conn.Subscribe(TopicLCDRows)}
}

// Channel delivers raw row updates for callers that block on them.
func (l *LCD) Channel() <-chan *bus.Message { return l.sub.Channel() }

// Drain applies every queued update without blocking.
func (l *LCD) Drain() {
	for {
		select {
		case msg, ok := <-l.sub.Channel():
			if !ok {
				return
			}
			l.Apply(msg)
		default:
			return
		}
	}
}

// Apply records one ui/lcd/<row> message. Others are ignored.
func (l *LCD) Apply(msg *bus.Message) {
	n := display.TopicLCD.Len()
	if msg.Topic.Len() != n+1 {
		return
	}
	row, ok := msg.Topic.At(n).(int)
	if !ok || row < 0 || row >= len(l.rows) {
		return
	}
	text, _ := msg.Payload.(string)
	l.rows[row] = text
}

func (l *LCD) Row(i int) string {
	if i < 0 || i >= len(l.rows) {
		return ""
	}
	return l.rows[i]
}

func (l *LCD) Rows() [2]string { return l.rows }
