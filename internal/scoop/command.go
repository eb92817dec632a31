package scoop

import (
	"fmt"
	"strings"
	"time"
)

// Command is one fully specified Scoop invocation: what to show the user,
// what to hand PowerShell, and how the orchestrator should treat the result.
type Command struct {
	// Label is the human-readable form shown in logs and job events,
	// e.g. "scoop install 'ripgrep'".
	Label string
	// Raw is the unwrapped PowerShell command text.
	Raw string
	// Timeout bounds the child process.
	Timeout time.Duration
	// RefreshAfterSuccess chains an export once the command succeeds.
	RefreshAfterSuccess bool
}

// Wrapped returns the command text actually handed to PowerShell: strict
// error handling, the raw command, then the native exit code propagated as
// the invocation's own.
func (c Command) Wrapped() string {
	return "$ErrorActionPreference='Stop'; " + c.Raw + "; exit $LASTEXITCODE"
}

// QuoteArg encloses a user-supplied value in PowerShell single quotes, the
// literal quoting form: the only escape needed is doubling embedded single
// quotes. Anything else (spaces, $, backticks) passes through verbatim.
func QuoteArg(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// Default timeouts per operation family. Listing and search are quick;
// installs can download large archives; a full update is effectively
// unbounded work.
const (
	TimeoutList      = 60 * time.Second
	TimeoutSearch    = 60 * time.Second
	TimeoutMutate    = 900 * time.Second
	TimeoutCleanup   = 300 * time.Second
	TimeoutCleanAll  = 600 * time.Second
	TimeoutUpdateAll = 3600 * time.Second
)

// ExportCommand lists installed packages. The 6> $null silences
// PowerShell's information stream, which Scoop chats on.
func ExportCommand() Command {
	return Command{
		Label:   "scoop export",
		Raw:     "scoop export 6> $null",
		Timeout: TimeoutList,
	}
}

func SearchCommand(query string) Command {
	return Command{
		Label:   fmt.Sprintf("scoop search %s", QuoteArg(query)),
		Raw:     fmt.Sprintf("scoop search %s", QuoteArg(query)),
		Timeout: TimeoutSearch,
	}
}

func InstallCommand(name string) Command {
	return mutating(fmt.Sprintf("scoop install %s", QuoteArg(name)), TimeoutMutate)
}

func UpdateCommand(name string) Command {
	return mutating(fmt.Sprintf("scoop update %s", QuoteArg(name)), TimeoutMutate)
}

func UpdateAllCommand() Command {
	return mutating("scoop update --all", TimeoutUpdateAll)
}

func UninstallCommand(name string) Command {
	return mutating(fmt.Sprintf("scoop uninstall %s", QuoteArg(name)), TimeoutMutate)
}

func CleanupCommand(name string) Command {
	return mutating(fmt.Sprintf("scoop cleanup %s", QuoteArg(name)), TimeoutCleanup)
}

func CleanupAllCommand() Command {
	return mutating("scoop cleanup --all", TimeoutCleanAll)
}

func mutating(text string, timeout time.Duration) Command {
	return Command{
		Label:               text,
		Raw:                 text,
		Timeout:             timeout,
		RefreshAfterSuccess: true,
	}
}
