package logpane

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mori5600/scoop-gui/internal/ui"
)

const maxLines = 2000

// Model is the scrollback pane for controller log output. It follows the
// tail unless the user has scrolled up.
type Model struct {
	viewport viewport.Model
	lines    []string
	width    int
	height   int
	ready    bool
}

func New() Model {
	return Model{}
}

// Append adds one log entry (which may itself span lines) and keeps the
// viewport glued to the bottom when it was already there.
func (m *Model) Append(entry string) {
	for _, line := range strings.Split(entry, "\n") {
		m.lines = append(m.lines, line)
	}
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
	if !m.ready {
		return
	}

	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	if wasAtBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) AppendError(message string) {
	m.Append(ui.StyleFailure.Render(message))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
