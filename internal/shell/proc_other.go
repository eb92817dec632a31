//go:build !windows

package shell

import "os/exec"

// hideWindow is a no-op off Windows; there is no console window to suppress.
func hideWindow(_ *exec.Cmd) {}
