package packages

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mori5600/scoop-gui/internal/model"
	"github.com/mori5600/scoop-gui/internal/ui"
)

// --- Custom delegate ---

type pkgDelegate struct{}

func (d pkgDelegate) Height() int                             { return 1 }
func (d pkgDelegate) Spacing() int                            { return 0 }
func (d pkgDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d pkgDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(pkgItem)
	if !ok {
		return
	}

	name := runewidth.FillRight(runewidth.Truncate(pi.pkg.Name, 28, "…"), 28)
	version := runewidth.FillRight(runewidth.Truncate(pi.pkg.Version, 16, "…"), 16)
	source := runewidth.FillRight(runewidth.Truncate(pi.pkg.DisplaySource(), 12, "…"), 12)
	updated := ui.StyleMuted.Render(pi.pkg.Updated)

	line := fmt.Sprintf(" %s %s %s %s", name, version, source, updated)

	if index == m.Index() {
		line = lipgloss.NewStyle().
			Background(ui.ColorHighlight).
			Width(m.Width()).
			Render(line)
	}
	fmt.Fprint(w, line)
}

// --- Item ---

type pkgItem struct {
	pkg model.InstalledPackage
}

func (p pkgItem) FilterValue() string {
	return p.pkg.FilterValue()
}

// --- Model ---

type Model struct {
	list    list.Model
	pkgs    []model.InstalledPackage
	width   int
	height  int
	loading bool
}

func New() Model {
	l := list.New(nil, pkgDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	return Model{list: l, loading: true}
}

// SetPackages replaces the snapshot. Rows arrive unsorted from scoop export;
// show them name-ascending like the original table's default ordering.
func (m *Model) SetPackages(pkgs []model.InstalledPackage) {
	sorted := make([]model.InstalledPackage, len(pkgs))
	copy(sorted, pkgs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	items := make([]list.Item, len(sorted))
	for i, p := range sorted {
		items[i] = pkgItem{pkg: p}
	}
	m.pkgs = sorted
	m.loading = false
	m.list.SetItems(items)
}

func (m Model) Selected() *model.InstalledPackage {
	item, ok := m.list.SelectedItem().(pkgItem)
	if !ok {
		return nil
	}
	pkg := item.pkg
	return &pkg
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Count() int {
	return len(m.pkgs)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return ui.StyleMuted.Render("  Loading packages...")
	}
	if len(m.pkgs) == 0 {
		return ui.StyleMuted.Render("  No packages installed")
	}
	header := ui.StyleMuted.Render(fmt.Sprintf(" %s %s %s %s",
		runewidth.FillRight("Name", 28),
		runewidth.FillRight("Version", 16),
		runewidth.FillRight("Source", 12),
		"Updated"))
	return header + "\n" + m.list.View()
}
