//go:build !windows

package shell

import (
	"strings"
	"testing"
	"time"
)

func TestExecRunnerCapturesOutputAndExitCode(t *testing.T) {
	res := ExecRunner{}.Run(
		[]string{"sh", "-c", "echo out; echo err 1>&2; exit 3"},
		5*time.Second,
	)

	if got := string(res.Stdout); got != "out\n" {
		t.Errorf("stdout = %q, want %q", got, "out\n")
	}
	if got := string(res.Stderr); got != "err\n" {
		t.Errorf("stderr = %q, want %q", got, "err\n")
	}
	if res.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", res.ExitCode)
	}
}

func TestExecRunnerSuccess(t *testing.T) {
	res := ExecRunner{}.Run([]string{"sh", "-c", "exit 0"}, 5*time.Second)

	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
}

func TestExecRunnerTimeout(t *testing.T) {
	res := ExecRunner{}.Run([]string{"sh", "-c", "sleep 10"}, 100*time.Millisecond)

	if res.ExitCode != ExitCodeTimeout {
		t.Errorf("exit code = %d, want %d", res.ExitCode, ExitCodeTimeout)
	}
	if got := string(res.Stderr); got != "timeout: command exceeded limit" {
		t.Errorf("stderr = %q", got)
	}
}

func TestExecRunnerStartFailure(t *testing.T) {
	res := ExecRunner{}.Run([]string{"definitely-not-a-real-binary-3f9c"}, time.Second)

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(string(res.Stderr), "definitely-not-a-real-binary-3f9c") {
		t.Errorf("stderr = %q, want executable name in message", res.Stderr)
	}
}
