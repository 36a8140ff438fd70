package ui

import "pocket32-go/services/apps"

// MenuItem is one fixed entry of the main menu.
type MenuItem struct {
	Name string
	App  apps.ID
}

// DefaultMenu is the main menu in display order.
var DefaultMenu = []MenuItem{
	{Name: "IR Tools", App: apps.IR},
	{Name: "Sub-GHz", App: apps.SubGHz},
	{Name: "Utilities", App: apps.Utils},
	{Name: "Settings", App: apps.Settings},
}

// renderMenu draws the page holding the selected item. Pages hold one item
// per screen row; the last column carries ^ and v when more pages exist.
func (d *Dispatcher) renderMenu() {
	scr := d.env.Screen
	per := scr.Rows()
	top := (d.idx / per) * per
	for r := 0; r < per; r++ {
		d.line = d.line[:0]
		i := top + r
		if i < len(d.menu) {
			if i == d.idx {
				d.line = append(d.line, "> "...)
			} else {
				d.line = append(d.line, "  "...)
			}
			d.line = append(d.line, d.menu[i].Name...)
		}
		switch {
		case r == 0 && top > 0:
			d.line = mark(d.line, scr.Cols(), '^')
		case r == per-1 && top+per < len(d.menu):
			d.line = mark(d.line, scr.Cols(), 'v')
		}
		scr.LineBytes(r, d.line)
	}
}

// mark pads b to cols-1 and appends c in the last column.
func mark(b []byte, cols int, c byte) []byte {
	if len(b) > cols-1 {
		b = b[:cols-1]
	}
	for len(b) < cols-1 {
		b = append(b, ' ')
	}
	return append(b, c)
}
