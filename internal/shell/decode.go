package shell

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

var replacementUTF8 = []byte(string(utf8.RuneError))

// Decode turns raw process output into text. Scoop's output is normally
// UTF-8, but Windows PowerShell on a Japanese locale can emit cp932; valid
// UTF-8 wins, then a Shift-JIS decode is attempted, then UTF-8 with
// replacement runes as a last resort.
func Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// The x/text decoder substitutes U+FFFD rather than failing; treat any
	// substitution as "not cp932" and fall through.
	if text, err := japanese.ShiftJIS.NewDecoder().Bytes(data); err == nil &&
		!bytes.Contains(text, replacementUTF8) {
		return string(text)
	}
	// The []rune round-trip replaces invalid sequences with U+FFFD.
	return string([]rune(string(data)))
}
