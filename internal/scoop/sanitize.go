package scoop

import (
	"regexp"
	"strings"
)

// Scoop prints through PowerShell's formatting pipeline, which may emit ANSI
// escape sequences even when stdout is not a terminal.
var (
	ansiOSCRe   = regexp.MustCompile(`\x1b\][^\x07]*(?:\x07|\x1b\\)`)
	ansiCSIRe   = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)
	ansi2CharRe = regexp.MustCompile(`\x1b[@-Z\\-_]`)
)

// Sanitize normalizes line endings to "\n" and strips OSC, CSI and
// two-character terminal escape sequences.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = ansiOSCRe.ReplaceAllString(text, "")
	text = ansiCSIRe.ReplaceAllString(text, "")
	text = ansi2CharRe.ReplaceAllString(text, "")
	return text
}
