package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mori5600/scoop-gui/internal/model"
	"github.com/mori5600/scoop-gui/internal/ui"
)

// Relay adapts controller notifications into Bubble Tea messages. It is
// handed to the controller before the program exists, so messages emitted
// before Bind are buffered and flushed on Bind. Program.Send is safe to call
// from the controller's goroutine; the program processes messages on its
// single update goroutine.
type Relay struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []tea.Msg
}

func NewRelay() *Relay {
	return &Relay{}
}

// Bind attaches the program's Send and flushes anything buffered.
func (r *Relay) Bind(send func(tea.Msg)) {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.send = send
	r.mu.Unlock()

	for _, msg := range pending {
		send(msg)
	}
}

func (r *Relay) post(msg tea.Msg) {
	r.mu.Lock()
	if r.send == nil {
		r.pending = append(r.pending, msg)
		r.mu.Unlock()
		return
	}
	send := r.send
	r.mu.Unlock()
	send(msg)
}

func (r *Relay) Log(line string) {
	r.post(ui.LogMsg{Line: line})
}

func (r *Relay) Error(message string) {
	r.post(ui.ErrorMsg{Message: message})
}

func (r *Relay) Loaded(packages []model.InstalledPackage) {
	r.post(ui.PackagesLoadedMsg{Packages: packages})
}

func (r *Relay) Searched(results []model.SearchResult) {
	r.post(ui.SearchResultsMsg{Results: results})
}

func (r *Relay) BusyChanged(busy bool) {
	r.post(ui.BusyChangedMsg{Busy: busy})
}

func (r *Relay) JobStarted(label string) {
	r.post(ui.JobStartedMsg{Label: label})
}

func (r *Relay) JobFinished(label string, exitCode int) {
	r.post(ui.JobFinishedMsg{Label: label, ExitCode: exitCode})
}
