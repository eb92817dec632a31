package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mori5600/scoop-gui/internal/tui/logpane"
	"github.com/mori5600/scoop-gui/internal/tui/packages"
	"github.com/mori5600/scoop-gui/internal/tui/results"
	"github.com/mori5600/scoop-gui/internal/ui"
)

// Commander is the slice of the controller the TUI drives. Methods are
// non-blocking; outcomes arrive back as ui messages through the Relay.
type Commander interface {
	Refresh()
	Search(query string)
	Install(name string)
	Update(name string)
	UpdateAll()
	Uninstall(name string)
	Cleanup(name string)
	CleanupAll()
	IsBusy() bool
}

type Pane int

const (
	PaneLeft Pane = iota
	PaneRight
)

type LeftView int

const (
	ViewPackages LeftView = iota
	ViewSearch
)

type App struct {
	ctrl Commander

	packagesView packages.Model
	resultsView  results.Model
	logView      logpane.Model
	spinner      spinner.Model

	leftView    LeftView
	focusedPane Pane
	width       int
	height      int
	status      string
	busy        bool
}

func NewApp(ctrl Commander) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorWarning)

	return App{
		ctrl:         ctrl,
		packagesView: packages.New(),
		resultsView:  results.New(),
		logView:      logpane.New(),
		spinner:      sp,
		status:       "Loading packages...",
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			a.ctrl.Refresh()
			return nil
		},
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case results.SubmitMsg:
		a.resultsView.SetLoading()
		a.ctrl.Search(msg.Query)
		return a, nil

	case ui.LogMsg:
		a.logView.Append(msg.Line)
		return a, nil

	case ui.ErrorMsg:
		a.logView.AppendError(msg.Message)
		a.status = msg.Message
		return a, nil

	case ui.PackagesLoadedMsg:
		a.packagesView.SetPackages(msg.Packages)
		a.status = fmt.Sprintf("%d packages", len(msg.Packages))
		return a, nil

	case ui.SearchResultsMsg:
		a.resultsView.SetResults(msg.Results)
		a.leftView = ViewSearch
		a.status = fmt.Sprintf("%d search results", len(msg.Results))
		return a, nil

	case ui.BusyChangedMsg:
		a.busy = msg.Busy
		return a, nil

	case ui.JobStartedMsg:
		a.status = "running: " + msg.Label
		return a, nil

	case ui.JobFinishedMsg:
		if msg.ExitCode == 0 {
			a.status = "done: " + msg.Label
		} else {
			a.status = fmt.Sprintf("failed (code=%d): %s", msg.ExitCode, msg.Label)
		}
		return a, nil
	}

	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry contexts swallow everything except escape.
	if a.focusedPane == PaneLeft && a.leftView == ViewSearch && a.resultsView.IsTyping() {
		if msg.String() == "esc" {
			a.resultsView.Deactivate()
			a.leftView = ViewPackages
			return a, nil
		}
		var cmd tea.Cmd
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd
	}
	if a.focusedPane == PaneLeft && a.leftView == ViewPackages && a.packagesView.IsFiltering() {
		var cmd tea.Cmd
		a.packagesView, cmd = a.packagesView.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, ui.Keys.Tab):
		if a.focusedPane == PaneLeft {
			a.focusedPane = PaneRight
		} else {
			a.focusedPane = PaneLeft
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Search):
		a.leftView = ViewSearch
		a.focusedPane = PaneLeft
		a.resultsView.Activate()
		return a, nil

	case key.Matches(msg, ui.Keys.Back):
		if a.leftView == ViewSearch {
			a.resultsView.Deactivate()
			a.leftView = ViewPackages
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Refresh):
		a.ctrl.Refresh()
		return a, nil

	case key.Matches(msg, ui.Keys.UpdateAll):
		a.ctrl.UpdateAll()
		return a, nil

	case key.Matches(msg, ui.Keys.CleanupAll):
		a.ctrl.CleanupAll()
		return a, nil

	case key.Matches(msg, ui.Keys.Install):
		if a.leftView == ViewSearch {
			if res := a.resultsView.Selected(); res != nil {
				a.ctrl.Install(res.Name)
			} else {
				a.status = "select a search result to install"
			}
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Update):
		if a.leftView == ViewPackages {
			if pkg := a.packagesView.Selected(); pkg != nil {
				a.ctrl.Update(pkg.Name)
			} else {
				a.status = "select a package to update"
			}
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Uninstall):
		if a.leftView == ViewPackages {
			if pkg := a.packagesView.Selected(); pkg != nil {
				a.ctrl.Uninstall(pkg.Name)
			} else {
				a.status = "select a package to uninstall"
			}
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Cleanup):
		if a.leftView == ViewPackages {
			if pkg := a.packagesView.Selected(); pkg != nil {
				a.ctrl.Cleanup(pkg.Name)
			} else {
				a.status = "select a package to cleanup"
			}
		}
		return a, nil
	}

	// Navigation falls through to the focused pane.
	var cmd tea.Cmd
	if a.focusedPane == PaneRight {
		a.logView, cmd = a.logView.Update(msg)
	} else if a.leftView == ViewSearch {
		a.resultsView, cmd = a.resultsView.Update(msg)
	} else {
		a.packagesView, cmd = a.packagesView.Update(msg)
	}
	return a, cmd
}

func (a *App) layout() {
	// header + status bar + pane borders
	paneHeight := a.height - 2 - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	leftWidth := a.width * 55 / 100
	rightWidth := a.width - leftWidth
	// account for rounded borders
	a.packagesView.SetSize(leftWidth-2, paneHeight-1)
	a.resultsView.SetSize(leftWidth-2, paneHeight)
	a.logView.SetSize(rightWidth-2, paneHeight)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	activity := ""
	if a.busy || a.ctrl.IsBusy() {
		activity = a.spinner.View() + "working"
	}
	header := RenderHeader("scoop-gui", activity, a.width)

	var left string
	if a.leftView == ViewSearch {
		left = a.resultsView.View()
	} else {
		left = a.packagesView.View()
	}
	right := a.logView.View()

	paneHeight := a.height - 2 - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	leftWidth := a.width * 55 / 100
	rightWidth := a.width - leftWidth

	leftStyle, rightStyle := ui.StylePane, ui.StylePane
	if a.focusedPane == PaneLeft {
		leftStyle = ui.StylePaneFocused
	} else {
		rightStyle = ui.StylePaneFocused
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Width(leftWidth-2).Height(paneHeight).Render(left),
		rightStyle.Width(rightWidth-2).Height(paneHeight).Render(right),
	)

	hints := "r refresh · / search · u update · U update all · x uninstall · c cleanup · q quit"
	status := RenderStatusBar(a.status, hints, a.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, status)
}
