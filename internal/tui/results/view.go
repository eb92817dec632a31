package results

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mori5600/scoop-gui/internal/model"
	"github.com/mori5600/scoop-gui/internal/ui"
)

// SubmitMsg is emitted when the user confirms a search query.
type SubmitMsg struct {
	Query string
}

type Mode int

const (
	ModeInput Mode = iota
	ModeResults
)

// --- Delegate ---

type resultDelegate struct{}

func (d resultDelegate) Height() int                             { return 1 }
func (d resultDelegate) Spacing() int                            { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(resultItem)
	if !ok {
		return
	}

	name := runewidth.FillRight(runewidth.Truncate(ri.res.Name, 28, "…"), 28)
	version := runewidth.FillRight(runewidth.Truncate(ri.res.Version, 16, "…"), 16)
	source := runewidth.FillRight(runewidth.Truncate(ri.res.Source, 12, "…"), 12)
	bins := ui.StyleMuted.Render(ri.res.Binaries)

	line := fmt.Sprintf(" %s %s %s %s", name, version, source, bins)

	if index == m.Index() {
		line = lipgloss.NewStyle().
			Background(ui.ColorHighlight).
			Width(m.Width()).
			Render(line)
	}
	fmt.Fprint(w, line)
}

type resultItem struct {
	res model.SearchResult
}

func (r resultItem) FilterValue() string {
	return r.res.FilterValue()
}

// --- Model ---

type Model struct {
	input   textinput.Model
	list    list.Model
	results []model.SearchResult
	mode    Mode
	width   int
	height  int
	loading bool
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search scoop buckets..."
	ti.CharLimit = 128

	l := list.New(nil, resultDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys())
	l.DisableQuitKeybindings()

	return Model{input: ti, list: l}
}

func (m *Model) Activate() {
	m.mode = ModeInput
	m.input.Focus()
}

func (m *Model) Deactivate() {
	m.input.Blur()
}

func (m Model) Mode() Mode {
	return m.mode
}

func (m Model) IsTyping() bool {
	return m.mode == ModeInput
}

func (m Model) Query() string {
	return m.input.Value()
}

func (m *Model) SetLoading() {
	m.loading = true
}

func (m *Model) SetResults(results []model.SearchResult) {
	items := make([]list.Item, len(results))
	for i, r := range results {
		items[i] = resultItem{res: r}
	}
	m.results = results
	m.loading = false
	m.mode = ModeResults
	m.input.Blur()
	m.list.SetItems(items)
	m.list.ResetSelected()
}

func (m Model) Selected() *model.SearchResult {
	item, ok := m.list.SelectedItem().(resultItem)
	if !ok {
		return nil
	}
	res := item.res
	return &res
}

func (m Model) Count() int {
	return len(m.results)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
	m.list.SetSize(width, height-2)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.mode == ModeInput {
		switch keyMsg.String() {
		case "enter":
			query := m.input.Value()
			if query == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SubmitMsg{Query: query} }
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	prompt := " Search: " + m.input.View()

	var body string
	switch {
	case m.loading:
		body = ui.StyleMuted.Render("  Searching...")
	case m.mode == ModeInput:
		body = ui.StyleMuted.Render("  Type a query and press enter")
	case len(m.results) == 0:
		body = ui.StyleMuted.Render("  No matches found")
	default:
		header := ui.StyleMuted.Render(fmt.Sprintf(" %s %s %s %s",
			runewidth.FillRight("Name", 28),
			runewidth.FillRight("Version", 16),
			runewidth.FillRight("Source", 12),
			"Binaries"))
		body = header + "\n" + m.list.View()
	}
	return prompt + "\n" + body
}
