package tui

import (
	"fmt"
	"strings"

	"github.com/SBDJUK/dsesh/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p", "ctrl+k"),
		key.WithHelp("↑/ctrl+p", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n", "ctrl+j"),
		key.WithHelp("↓/ctrl+n", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "connect"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type model struct {
	registry *session.Registry
	matches  []session.Session
	cursor   int
	selected *session.Session
	input    textinput.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
}

func newModel(reg *session.Registry) model {
	ti := textinput.New()
	ti.Placeholder = "filter sessions"
	ti.Prompt = "> "
	ti.Focus()

	return model{
		registry: reg,
		matches:  reg.All(),
		input:    ti,
		help:     help.New(),
		keys:     keys,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			if len(m.matches) == 0 {
				return m, nil
			}
			chosen := m.matches[m.cursor]
			m.selected = &chosen
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter recomputes matches from the input and keeps the cursor in range.
func (m *model) applyFilter() {
	m.matches = m.registry.Filter(m.input.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleRange returns the slice of matches that fits the terminal height,
// keeping the cursor on screen.
func (m model) visibleRange() (int, int) {
	// header, input, borders and footer
	rows := m.height - 8
	if rows < 1 {
		rows = 1
	}

	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.matches) {
		end = len(m.matches)
	}
	return start, end
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("dsesh"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	var list strings.Builder
	if len(m.matches) == 0 {
		list.WriteString(dimStyle.Render("no matching sessions"))
	} else {
		start, end := m.visibleRange()
		for i := start; i < end; i++ {
			s := m.matches[i]
			if i == m.cursor {
				list.WriteString(selectedStyle.Render("▸ " + s.Name))
			} else {
				list.WriteString("  " + s.Name)
			}
			if s.Path != "" {
				list.WriteString(dimStyle.Render("  " + s.Path))
			}
			if i < end-1 {
				list.WriteString("\n")
			}
		}
	}

	b.WriteString(sessionListStyle.Render(list.String()))
	b.WriteString("\n")

	count := fmt.Sprintf("%d/%d", len(m.matches), m.registry.Len())
	footer := lipgloss.JoinHorizontal(lipgloss.Top, footerStyle.Render(count), m.help.View(m.keys))
	b.WriteString(footer)

	return b.String()
}
