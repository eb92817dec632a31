package scoop

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mori5600/scoop-gui/internal/model"
)

var columnSplitRe = regexp.MustCompile(`\s{2,}`)

// ParseSearch decodes `scoop search` output into result rows. It never
// fails: the worst case is an empty slice.
//
// Preferred input is a JSON array (a lone object counts as a one-element
// array). When no JSON value is present at all, the formatted-table fallback
// splits sanitized lines on runs of two or more spaces.
func ParseSearch(text string) []model.SearchResult {
	results := []model.SearchResult{}

	data, found := ExtractFirstJSONValue(text)
	if obj, ok := data.(map[string]any); ok {
		data = []any{obj}
	}
	if items, ok := data.([]any); ok {
		for _, item := range items {
			fields, ok := item.(map[string]any)
			if !ok {
				continue
			}
			name := coerceText(lookup(fields, "Name", "name"))
			if name == "" {
				continue
			}
			results = append(results, model.SearchResult{
				Name:     name,
				Version:  coerceText(lookup(fields, "Version", "version")),
				Source:   coerceText(lookup(fields, "Source", "source")),
				Binaries: coerceText(lookup(fields, "Binaries", "binaries")),
			})
		}
		return results
	}
	if found {
		// A scalar JSON value (e.g. a bare string) carries no rows.
		return results
	}

	return parseSearchTable(text)
}

// parseSearchTable handles the formatted table Scoop prints when no JSON is
// involved, e.g.
//
//	Results from local buckets...
//	Name   Version  Source  Binaries
//	----   -------  ------  --------
//	tool   1.0.0    main    tool.exe
func parseSearchTable(text string) []model.SearchResult {
	results := []model.SearchResult{}

	for _, line := range strings.Split(Sanitize(text), "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}

		lower := strings.ToLower(s)
		if strings.HasPrefix(lower, "results from") {
			continue
		}
		if strings.HasPrefix(lower, "name") && strings.Contains(lower, "version") {
			continue
		}
		if isSeparatorLine(s) {
			continue
		}

		parts := columnSplitRe.Split(s, -1)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}

		row := model.SearchResult{Name: name}
		if len(parts) >= 2 {
			row.Version = strings.TrimSpace(parts[1])
		}
		if len(parts) >= 3 {
			row.Source = strings.TrimSpace(parts[2])
		}
		if len(parts) >= 4 {
			bins := make([]string, 0, len(parts)-3)
			for _, p := range parts[3:] {
				if p = strings.TrimSpace(p); p != "" {
					bins = append(bins, p)
				}
			}
			row.Binaries = strings.Join(bins, "  ")
		}
		results = append(results, row)
	}
	return results
}

func isSeparatorLine(s string) bool {
	seen := false
	for _, r := range s {
		switch r {
		case '-':
			seen = true
		case ' ':
		default:
			return false
		}
	}
	return seen
}

// lookup reads the first key with a non-empty value, tolerating the casing
// differences between PowerShell's ConvertTo-Json and hand-written JSON.
func lookup(fields map[string]any, keys ...string) any {
	for _, k := range keys {
		v, ok := fields[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return nil
}

// coerceText renders an arbitrary decoded JSON value as display text.
// Lists join their coerced elements with single spaces. Object values carry
// no displayable content (PowerShell serializes JsonElement wrappers into a
// lone "ValueKind" key) and collapse to "".
func coerceText(value any) string {
	switch t := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case json.Number:
		return strings.TrimSpace(t.String())
	case []any:
		parts := make([]string, 0, len(t))
		for _, v := range t {
			if text := coerceText(v); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.TrimSpace(strings.Join(parts, " "))
	case map[string]any:
		return ""
	default:
		return ""
	}
}
