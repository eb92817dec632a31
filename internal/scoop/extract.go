package scoop

import (
	"encoding/json"
	"strings"
)

// ExtractFirstJSONValue pulls the first well-formed JSON value out of a noisy
// text stream. Scoop and PowerShell interleave banner lines, progress output
// and warnings with the actual payload, so exact line framing cannot be
// relied on. The scan tries a decode at every '{' or '[' and returns the
// first value that parses; trailing garbage after the value is ignored.
//
// Numbers are decoded as json.Number so that a manifest version like 101
// renders as "101" rather than "101.0".
func ExtractFirstJSONValue(text string) (any, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' && text[i] != '[' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err == nil {
			return v, true
		}
	}
	return nil, false
}
