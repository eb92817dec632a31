package scoop

import (
	"fmt"

	"github.com/mori5600/scoop-gui/internal/model"
)

// ParseExport decodes `scoop export` output into installed packages.
//
// The second return value distinguishes a parse failure (false) from a valid
// export that simply lists zero packages (true with an empty slice). The
// payload must be a JSON object with a list-valued "apps" field; anything
// else is a failure.
func ParseExport(text string) ([]model.InstalledPackage, bool) {
	data, ok := ExtractFirstJSONValue(text)
	if !ok {
		return nil, false
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, false
	}
	items, ok := obj["apps"].([]any)
	if !ok {
		return nil, false
	}

	apps := make([]model.InstalledPackage, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		apps = append(apps, model.InstalledPackage{
			Name:    stringify(fields["Name"]),
			Version: stringify(fields["Version"]),
			Source:  stringify(fields["Source"]),
			Updated: formatUpdated(stringify(fields["Updated"])),
			Info:    stringify(fields["Info"]),
		})
	}
	return apps, true
}

// stringify renders a raw JSON field as text, with "" for a missing key.
// Unlike coerceText it does not trim or join; export fields are plain scalars.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// formatUpdated trims Scoop's ISO-8601-ish "Updated" value for display:
// keep the first 19 characters (date + time) and swap the separator at
// index 10 for a space. Shorter values pass through untouched.
func formatUpdated(value string) string {
	if len(value) < 19 {
		return value
	}
	b := []byte(value[:19])
	b[10] = ' '
	return string(b)
}
