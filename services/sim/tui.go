package sim

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pocket32-go/bus"
	"pocket32-go/x/conv"
	"pocket32-go/x/strx"
)

const (
	colorAccent = "86"
	colorFrame  = "205"
	colorMuted  = "241"
	colorLCD    = "120"
	colorDanger = "196"
)

var styles = struct {
	Title  lipgloss.Style
	LCD    lipgloss.Style
	Status lipgloss.Style
	Fault  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	LCD: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorFrame)).
		Foreground(lipgloss.Color(colorLCD)).
		Padding(0, 1),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Fault: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDanger)),
}

type keyMap struct {
	Up, Down, Select, Back key.Binding
	IR, Radio, Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.IR, k.Radio, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc", "backspace", "h"), key.WithHelp("esc/h", "back")),
	IR:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ir code")),
	Radio:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "radio fault")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// lcdMsg carries one mirrored row update into the model.
type lcdMsg struct{ msg *bus.Message }

// Model is the terminal front end. It only talks to the Machine through
// the bus.
type Model struct {
	conn *bus.Connection
	lcd  *LCD
	help help.Model

	radio  RadioMode
	lastIR uint32
	sentIR bool
	code   func() uint32
}

func NewModel(b *bus.Bus) *Model {
	conn := b.NewConnection("tui")
	return &Model{
		conn: conn,
		lcd:  WatchLCD(conn),
		help: help.New(),
		code: rand.Uint32,
	}
}

func (m *Model) waitLCD() tea.Cmd {
	ch := m.lcd.Channel()
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return lcdMsg{msg}
	}
}

func (m *Model) Init() tea.Cmd { return m.waitLCD() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lcdMsg:
		m.lcd.Apply(msg.msg)
		return m, m.waitLCD()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.conn.Disconnect()
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			PressButton(m.conn, "up", 0)
		case key.Matches(msg, keys.Down):
			PressButton(m.conn, "down", 0)
		case key.Matches(msg, keys.Select):
			PressButton(m.conn, "select", 0)
		case key.Matches(msg, keys.Back):
			PressButton(m.conn, "back", 0)
		case key.Matches(msg, keys.IR):
			m.lastIR, m.sentIR = m.code(), true
			SendIR(m.conn, m.lastIR)
		case key.Matches(msg, keys.Radio):
			if m.radio == RadioOK {
				m.radio = RadioFail
			} else {
				m.radio = RadioOK
			}
			SetRadio(m.conn, m.radio)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) View() string {
	rows := m.lcd.Rows()
	var b strings.Builder
	b.WriteString(styles.Title.Render("pocket32 simulator"))
	b.WriteString("\n")
	b.WriteString(styles.LCD.Render(strx.Fit(rows[0], 16) + "\n" + strx.Fit(rows[1], 16)))
	b.WriteString("\n")

	radio := "radio " + m.radio.String()
	if m.radio != RadioOK {
		radio = styles.Fault.Render(radio)
	} else {
		radio = styles.Status.Render(radio)
	}
	b.WriteString(radio)
	if m.sentIR {
		b.WriteString(styles.Status.Render("  last ir 0x" + string(conv.AppendHex32(nil, m.lastIR))))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Rows exposes the screen as last seen by the model.
func (m *Model) Rows() [2]string { return m.lcd.Rows() }
