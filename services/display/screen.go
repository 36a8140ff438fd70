// Package display renders the two status rows shown by the menu and apps.
//
// A Screen sits in front of a types.Display sink (LCD, serial console, or the
// simulator bus). It truncates rows to the display width and suppresses
// rewrites of unchanged rows, which keeps I2C and serial traffic to what
// actually changed between ticks.
package display

import (
	"pocket32-go/types"
)

// Screen is owned by the UI loop; it is not safe for concurrent use.
type Screen struct {
	d    types.Display
	cols int

	rows  [][]byte // last successfully written content
	valid []bool
	buf   []byte

	writeErrs uint32
}

// New wraps d. Non-positive sizes reported by d fall back to 16x2.
func New(d types.Display) *Screen {
	cols, rows := d.Size()
	if cols <= 0 {
		cols = 16
	}
	if rows <= 0 {
		rows = 2
	}
	s := &Screen{
		d:     d,
		cols:  cols,
		rows:  make([][]byte, rows),
		valid: make([]bool, rows),
		buf:   make([]byte, 0, cols),
	}
	for i := range s.rows {
		s.rows[i] = make([]byte, 0, cols)
	}
	return s
}

func (s *Screen) Cols() int { return s.cols }
func (s *Screen) Rows() int { return len(s.rows) }

// Line shows text on row, cut to the display width. Rows outside the
// display are ignored.
func (s *Screen) Line(row int, text string) {
	s.buf = append(s.buf[:0], text...)
	s.set(row)
}

// LineBytes is Line for text assembled in a byte buffer.
func (s *Screen) LineBytes(row int, text []byte) {
	s.buf = append(s.buf[:0], text...)
	s.set(row)
}

func (s *Screen) set(row int) {
	if row < 0 || row >= len(s.rows) {
		return
	}
	if len(s.buf) > s.cols {
		s.buf = s.buf[:s.cols]
	}
	if s.valid[row] && string(s.rows[row]) == string(s.buf) {
		return
	}
	if err := s.d.WriteLine(row, s.buf); err != nil {
		s.writeErrs++
		s.valid[row] = false
		return
	}
	s.rows[row] = append(s.rows[row][:0], s.buf...)
	s.valid[row] = true
}

// Show sets both rows of a two-row screen.
func (s *Screen) Show(line0, line1 string) {
	s.Line(0, line0)
	s.Line(1, line1)
}

// Row returns the last content written to row.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	return string(s.rows[row])
}

// Invalidate forces the next Line call on every row to reach the sink.
func (s *Screen) Invalidate() {
	for i := range s.valid {
		s.valid[i] = false
	}
}

// WriteErrors counts failed sink writes since boot.
func (s *Screen) WriteErrors() uint32 { return s.writeErrs }
