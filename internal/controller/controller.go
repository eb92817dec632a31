// Package controller sequences Scoop command execution. Two independent
// single-flight slots exist: one for state-changing commands plus the export
// that refreshes the package list, one for searches. Submitting to an
// occupied slot is rejected with a log line; there is no queue. Successful
// mutating commands chain an export into their slot without an intervening
// idle transition.
//
// All slot state is confined to the run-loop goroutine: submissions and
// worker completions arrive over one channel, so no locks guard the job
// bookkeeping. Workers only run the child process and post the result back.
package controller

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mori5600/scoop-gui/internal/config"
	"github.com/mori5600/scoop-gui/internal/model"
	"github.com/mori5600/scoop-gui/internal/scoop"
	"github.com/mori5600/scoop-gui/internal/shell"
)

type slotKind int

const (
	slotCommand slotKind = iota
	slotSearch
)

// job is one in-flight command. The id is monotonic per slot; a completion
// whose id no longer matches the slot's active job is stale and dropped.
type job struct {
	id  int64
	cmd scoop.Command
}

type slot struct {
	nextID int64
	active *job
}

type submitMsg struct {
	kind slotKind
	cmd  scoop.Command
}

type doneMsg struct {
	kind   slotKind
	id     int64
	result shell.Result
}

type Controller struct {
	cfg    config.Config
	runner shell.Runner
	notify Notifier

	msgs chan any
	quit chan struct{}

	command slot
	search  slot

	busy    atomic.Bool
	workers sync.WaitGroup
	loopWG  sync.WaitGroup
}

func New(cfg config.Config, runner shell.Runner, notify Notifier) *Controller {
	return &Controller{
		cfg:    cfg,
		runner: runner,
		notify: notify,
		msgs:   make(chan any, 16),
		quit:   make(chan struct{}),
	}
}

// Start launches the run loop. Call exactly once.
func (c *Controller) Start() {
	c.loopWG.Add(1)
	go func() {
		defer c.loopWG.Done()
		c.loop()
	}()
}

// Close stops the run loop and waits for in-flight workers to unwind. The
// child processes themselves finish or hit their timeouts; their results are
// discarded.
func (c *Controller) Close() {
	close(c.quit)
	c.loopWG.Wait()
	c.workers.Wait()
}

// IsBusy reports whether the command slot has an in-flight job. Search-slot
// activity is not included.
func (c *Controller) IsBusy() bool {
	return c.busy.Load()
}

func (c *Controller) Refresh() {
	c.submit(slotCommand, c.cfg.Timeouts.Export.Apply(scoop.ExportCommand()))
}

func (c *Controller) Search(query string) {
	c.submit(slotSearch, c.cfg.Timeouts.Search.Apply(scoop.SearchCommand(query)))
}

func (c *Controller) Install(name string) {
	c.submit(slotCommand, c.cfg.Timeouts.Install.Apply(scoop.InstallCommand(name)))
}

func (c *Controller) Update(name string) {
	c.submit(slotCommand, c.cfg.Timeouts.Update.Apply(scoop.UpdateCommand(name)))
}

func (c *Controller) UpdateAll() {
	c.submit(slotCommand, c.cfg.Timeouts.UpdateAll.Apply(scoop.UpdateAllCommand()))
}

func (c *Controller) Uninstall(name string) {
	c.submit(slotCommand, c.cfg.Timeouts.Uninstall.Apply(scoop.UninstallCommand(name)))
}

func (c *Controller) Cleanup(name string) {
	c.submit(slotCommand, c.cfg.Timeouts.Cleanup.Apply(scoop.CleanupCommand(name)))
}

func (c *Controller) CleanupAll() {
	c.submit(slotCommand, c.cfg.Timeouts.CleanupAll.Apply(scoop.CleanupAllCommand()))
}

func (c *Controller) submit(kind slotKind, cmd scoop.Command) {
	select {
	case c.msgs <- submitMsg{kind: kind, cmd: cmd}:
	case <-c.quit:
	}
}

func (c *Controller) loop() {
	for {
		select {
		case <-c.quit:
			return
		case m := <-c.msgs:
			switch msg := m.(type) {
			case submitMsg:
				c.handleSubmit(msg)
			case doneMsg:
				c.handleDone(msg)
			}
		}
	}
}

func (c *Controller) slotFor(kind slotKind) *slot {
	if kind == slotSearch {
		return &c.search
	}
	return &c.command
}

func (c *Controller) handleSubmit(msg submitMsg) {
	if c.slotFor(msg.kind).active != nil {
		c.notify.Log("[info] already running")
		return
	}
	c.startJob(msg.kind, msg.cmd)
}

// startJob allocates the next job id, marks the slot active and dispatches a
// worker. Also called directly for the chained refresh so the busy signal
// never drops between a mutation and its export.
func (c *Controller) startJob(kind slotKind, cmd scoop.Command) {
	s := c.slotFor(kind)
	s.nextID++
	j := &job{id: s.nextID, cmd: cmd}
	s.active = j

	c.notify.JobStarted(cmd.Label)
	c.notify.Log("$ " + cmd.Label)
	c.notify.Log("[running] ...")
	if kind == slotCommand {
		c.setBusy(true)
	}

	argv := shell.BuildArgv(c.cfg.Shell, cmd.Wrapped())
	timeout := cmd.Timeout
	id := j.id
	c.workers.Add(1)
	go func() {
		defer c.workers.Done()
		res := c.runner.Run(argv, timeout)
		select {
		case c.msgs <- doneMsg{kind: kind, id: id, result: res}:
		case <-c.quit:
		}
	}()
}

func (c *Controller) handleDone(msg doneMsg) {
	s := c.slotFor(msg.kind)
	if s.active == nil || s.active.id != msg.id {
		// Stale: a superseded job's completion. Correct sequential slot
		// reuse never produces this, but the check backstops re-entrancy.
		return
	}
	j := s.active
	s.active = nil

	stdout := shell.Decode(msg.result.Stdout)
	stderr := shell.Decode(msg.result.Stderr)

	if msg.kind == slotSearch {
		c.finishSearch(j, stdout, stderr, msg.result.ExitCode)
		return
	}

	c.finishCommand(j, stdout, stderr, msg.result.ExitCode)
	if s.active == nil {
		c.setBusy(false)
	}
}

func (c *Controller) finishCommand(j *job, stdout, stderr string, exitCode int) {
	c.logStderr(stderr)

	if exitCode != 0 {
		c.notify.Error(fmt.Sprintf("[error] scoop failed (code=%d)", exitCode))
		c.notify.JobFinished(j.cmd.Label, exitCode)
		return
	}

	if j.cmd.RefreshAfterSuccess {
		c.notify.JobFinished(j.cmd.Label, 0)
		c.startJob(slotCommand, c.cfg.Timeouts.Export.Apply(scoop.ExportCommand()))
		return
	}

	apps, ok := scoop.ParseExport(stdout)
	if !ok {
		c.notify.Error("[error] failed to parse scoop export json")
		c.notify.JobFinished(j.cmd.Label, 1)
		return
	}
	c.notify.Loaded(apps)
	c.notify.Log(fmt.Sprintf("[loaded] %d packages", len(apps)))
	c.notify.JobFinished(j.cmd.Label, 0)
}

func (c *Controller) finishSearch(j *job, stdout, stderr string, exitCode int) {
	if exitCode != 0 {
		// Scoop exits 1 for an empty search, grep-style. Normalize that
		// to a successful empty result instead of an error.
		if exitCode == 1 && containsNoMatches(stdout, stderr) {
			c.notify.Searched([]model.SearchResult{})
			c.notify.Log("[search] no matches found")
			c.notify.JobFinished(j.cmd.Label, 0)
			return
		}
		c.logStderr(stderr)
		c.notify.Error(fmt.Sprintf("[error] scoop failed (code=%d)", exitCode))
		c.notify.JobFinished(j.cmd.Label, exitCode)
		return
	}

	results := scoop.ParseSearch(stdout)
	c.notify.Searched(results)
	c.notify.Log(fmt.Sprintf("[search] %d results", len(results)))
	c.notify.JobFinished(j.cmd.Label, 0)
}

func containsNoMatches(stdout, stderr string) bool {
	combined := strings.ToLower(stdout + "\n" + stderr)
	return strings.Contains(combined, "no matches found")
}

func (c *Controller) logStderr(stderr string) {
	if strings.TrimSpace(stderr) == "" {
		return
	}
	c.notify.Log(strings.TrimRight(scoop.Sanitize(stderr), "\n"))
}

func (c *Controller) setBusy(busy bool) {
	if c.busy.Swap(busy) != busy {
		c.notify.BusyChanged(busy)
	}
}
