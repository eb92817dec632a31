package ui

import (
	"github.com/mori5600/scoop-gui/internal/model"
)

// Controller notifications, forwarded into the Bubble Tea program as
// messages so all rendering state mutates on the update goroutine.

type LogMsg struct {
	Line string
}

type ErrorMsg struct {
	Message string
}

type PackagesLoadedMsg struct {
	Packages []model.InstalledPackage
}

type SearchResultsMsg struct {
	Results []model.SearchResult
}

type BusyChangedMsg struct {
	Busy bool
}

type JobStartedMsg struct {
	Label string
}

type JobFinishedMsg struct {
	Label    string
	ExitCode int
}
