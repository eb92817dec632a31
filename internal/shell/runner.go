package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Reserved exit code for commands killed by their timeout, matching the
// coreutils timeout(1) convention.
const ExitCodeTimeout = 124

const timeoutMessage = "timeout: command exceeded limit"

// Result carries the raw outcome of one child process. Stdout and Stderr
// stay as bytes; decoding happens at the consumer so the encoding fallback
// chain is applied exactly once.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes an argument vector as a child process and captures its
// output. Implementations must be safe for concurrent use; the orchestrator
// calls Run from worker goroutines.
type Runner interface {
	Run(argv []string, timeout time.Duration) Result
}

// ExecRunner runs commands via os/exec. On Windows the child is created
// without a console window.
type ExecRunner struct{}

func (ExecRunner) Run(argv []string, timeout time.Duration) Result {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return Result{Stderr: []byte(timeoutMessage), ExitCode: ExitCodeTimeout}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
				ExitCode: exitErr.ExitCode(),
			}
		}
		// Start failure: the shell itself could not be executed.
		return Result{Stderr: []byte(err.Error()), ExitCode: 1}
	}
	return Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), ExitCode: 0}
}
