package scoop

import (
	"strings"
	"testing"
)

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ripgrep", "'ripgrep'"},
		{"name with spaces", "'name with spaces'"},
		{"o'brien", "'o''brien'"},
		{"''", "''''''"},
		{"", "''"},
		{"$env:PATH", "'$env:PATH'"},
	}
	for _, tt := range tests {
		if got := QuoteArg(tt.input); got != tt.want {
			t.Errorf("QuoteArg(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWrappedPropagatesExitCode(t *testing.T) {
	cmd := InstallCommand("ripgrep")
	wrapped := cmd.Wrapped()

	if !strings.HasPrefix(wrapped, "$ErrorActionPreference='Stop'; ") {
		t.Errorf("wrapped command missing strict mode prefix: %q", wrapped)
	}
	if !strings.HasSuffix(wrapped, "; exit $LASTEXITCODE") {
		t.Errorf("wrapped command missing exit code propagation: %q", wrapped)
	}
	if !strings.Contains(wrapped, "scoop install 'ripgrep'") {
		t.Errorf("wrapped command missing raw command: %q", wrapped)
	}
}

func TestCommandSurface(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		raw     string
		refresh bool
	}{
		{"export", ExportCommand(), "scoop export 6> $null", false},
		{"search", SearchCommand("quux"), "scoop search 'quux'", false},
		{"install", InstallCommand("quux"), "scoop install 'quux'", true},
		{"update", UpdateCommand("quux"), "scoop update 'quux'", true},
		{"update all", UpdateAllCommand(), "scoop update --all", true},
		{"uninstall", UninstallCommand("quux"), "scoop uninstall 'quux'", true},
		{"cleanup", CleanupCommand("quux"), "scoop cleanup 'quux'", true},
		{"cleanup all", CleanupAllCommand(), "scoop cleanup --all", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", tt.cmd.Raw, tt.raw)
			}
			if tt.cmd.RefreshAfterSuccess != tt.refresh {
				t.Errorf("RefreshAfterSuccess = %v, want %v", tt.cmd.RefreshAfterSuccess, tt.refresh)
			}
			if tt.cmd.Timeout <= 0 {
				t.Errorf("Timeout not set for %s", tt.name)
			}
		})
	}
}

func TestMutatingCommandTimeouts(t *testing.T) {
	if got := UpdateAllCommand().Timeout; got != TimeoutUpdateAll {
		t.Errorf("update all timeout = %v, want %v", got, TimeoutUpdateAll)
	}
	if got := InstallCommand("x").Timeout; got != TimeoutMutate {
		t.Errorf("install timeout = %v, want %v", got, TimeoutMutate)
	}
	if got := ExportCommand().Timeout; got != TimeoutList {
		t.Errorf("export timeout = %v, want %v", got, TimeoutList)
	}
}
