package controller

import "github.com/mori5600/scoop-gui/internal/model"

// Notifier is the surface the controller reports through. The presentation
// layer implements it; every method is invoked from the controller's own
// run loop, one call at a time, so implementations need no locking but must
// not block.
type Notifier interface {
	// Log receives user-visible log lines ("$ scoop export", stderr text,
	// "[info] already running", ...).
	Log(line string)
	// Error receives user-visible failure messages.
	Error(message string)
	// Loaded receives the full installed-package snapshot after a
	// successful export.
	Loaded(packages []model.InstalledPackage)
	// Searched receives the rows of a completed search.
	Searched(results []model.SearchResult)
	// BusyChanged fires on command-slot edge transitions. A chained
	// refresh keeps the slot busy, so a mutate-then-export sequence is a
	// single true/false pair.
	BusyChanged(busy bool)
	JobStarted(label string)
	JobFinished(label string, exitCode int)
}
