package display

import (
	"io"

	"pocket32-go/types"
)

var crlf = []byte("\r\n")

// Console writes each row update as one line on a log stream. It stands in
// for the LCD when none is fitted.
type Console struct {
	w          io.Writer
	cols, rows int
}

var _ types.Display = (*Console)(nil)

func NewConsole(w io.Writer, cols, rows int) *Console {
	return &Console{w: w, cols: cols, rows: rows}
}

func (c *Console) Size() (int, int) { return c.cols, c.rows }

func (c *Console) WriteLine(_ int, text []byte) error {
	if _, err := c.w.Write(text); err != nil {
		return err
	}
	_, err := c.w.Write(crlf)
	return err
}
