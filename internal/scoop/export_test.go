package scoop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mori5600/scoop-gui/internal/model"
)

func TestParseExport(t *testing.T) {
	text := `{"apps":[{"Name":"alpha-tool","Version":101,"Source":"bucket-a","Updated":"2026-02-07T12:34:56+09:00","Info":"Demo package"}]}`

	apps, ok := ParseExport(text)

	require.True(t, ok)
	require.Len(t, apps, 1)
	assert.Equal(t, model.InstalledPackage{
		Name:    "alpha-tool",
		Version: "101",
		Source:  "bucket-a",
		Updated: "2026-02-07 12:34:56",
		Info:    "Demo package",
	}, apps[0])
}

func TestParseExportToleratesNoise(t *testing.T) {
	text := "Updating Scoop...\nWARN  bucket main is out of date\n" +
		`{"buckets":[],"apps":[{"Name":"b","Version":"1.0"}]}` + "\ntrailing\n"

	apps, ok := ParseExport(text)

	require.True(t, ok)
	require.Len(t, apps, 1)
	assert.Equal(t, "b", apps[0].Name)
	assert.Equal(t, "1.0", apps[0].Version)
}

func TestParseExportStructureFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no json at all", "nothing to see"},
		{"wrong field name", `{"items": []}`},
		{"apps not a list", `{"apps": "not-a-list"}`},
		{"top level array", `[{"Name":"a"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps, ok := ParseExport(tt.text)
			assert.False(t, ok)
			assert.Nil(t, apps)
		})
	}
}

func TestParseExportEmptyListIsValid(t *testing.T) {
	apps, ok := ParseExport(`{"apps": []}`)

	require.True(t, ok)
	assert.Empty(t, apps)
}

func TestParseExportSkipsNonObjectElements(t *testing.T) {
	apps, ok := ParseExport(`{"apps": ["stray", 42, {"Name":"keep"}]}`)

	require.True(t, ok)
	require.Len(t, apps, 1)
	assert.Equal(t, "keep", apps[0].Name)
}

func TestParseExportMissingFieldsDefaultEmpty(t *testing.T) {
	apps, ok := ParseExport(`{"apps": [{"Name":"bare"}]}`)

	require.True(t, ok)
	require.Len(t, apps, 1)
	assert.Equal(t, model.InstalledPackage{Name: "bare"}, apps[0])
}

func TestFormatUpdated(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-02-07T12:34:56+09:00", "2026-02-07 12:34:56"},
		{"2026-02-07T12:34:56", "2026-02-07 12:34:56"},
		{"2026-02-07", "2026-02-07"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatUpdated(tt.input); got != tt.want {
			t.Errorf("formatUpdated(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
