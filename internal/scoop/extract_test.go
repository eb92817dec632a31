package scoop

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFirstJSONValueAfterNoise(t *testing.T) {
	text := "WARN: bucket out of date\nloading...\n{\"apps\": []}\ndone\n"

	v, ok := ExtractFirstJSONValue(text)

	require.True(t, ok)
	obj, isObj := v.(map[string]any)
	require.True(t, isObj)
	assert.Contains(t, obj, "apps")
}

func TestExtractFirstJSONValueArray(t *testing.T) {
	text := "Results from local buckets...\n[1, 2, 3] trailing garbage"

	v, ok := ExtractFirstJSONValue(text)

	require.True(t, ok)
	arr, isArr := v.([]any)
	require.True(t, isArr)
	assert.Len(t, arr, 3)
}

func TestExtractFirstJSONValueSkipsBrokenCandidates(t *testing.T) {
	// The first '{' opens an unterminated value; the scan must move on to
	// the next candidate offset.
	text := "{oops {\"ok\": true}"

	v, ok := ExtractFirstJSONValue(text)

	require.True(t, ok)
	obj := v.(map[string]any)
	assert.Equal(t, true, obj["ok"])
}

func TestExtractFirstJSONValueNone(t *testing.T) {
	for _, text := range []string{"", "no json here", "{broken", "[1, 2"} {
		_, ok := ExtractFirstJSONValue(text)
		assert.False(t, ok, "input %q", text)
	}
}

func TestExtractFirstJSONValueKeepsNumbersVerbatim(t *testing.T) {
	v, ok := ExtractFirstJSONValue(`{"Version": 101}`)

	require.True(t, ok)
	obj := v.(map[string]any)
	num, isNum := obj["Version"].(json.Number)
	require.True(t, isNum)
	assert.Equal(t, "101", num.String())
}
