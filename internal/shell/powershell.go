package shell

import "os/exec"

// FindPowerShell locates a usable PowerShell executable, preferring
// PowerShell 7 (pwsh) over Windows PowerShell. When neither resolves the
// bare name "powershell" is returned and lookup is deferred to exec.
func FindPowerShell() string {
	if path, err := exec.LookPath("pwsh"); err == nil {
		return path
	}
	if path, err := exec.LookPath("powershell"); err == nil {
		return path
	}
	return "powershell"
}

// BuildArgv builds the argument vector for executing one PowerShell command.
// An empty exe auto-detects the shell.
func BuildArgv(exe, command string) []string {
	if exe == "" {
		exe = FindPowerShell()
	}
	return []string{
		exe,
		"-NoLogo",
		"-NoProfile",
		"-NonInteractive",
		"-ExecutionPolicy",
		"Bypass",
		"-Command",
		command,
	}
}
