package handlers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestList_Text(t *testing.T) {
	stubDeps(t, false)
	var out bytes.Buffer

	require.NoError(t, List("", FormatText, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 39)
	assert.Contains(t, lines[0], "RELEASE")
	assert.Equal(t, "36 combinations, 32 to install, 4 excluded", lines[38])

	excluded := 0
	for _, line := range lines[1:37] {
		if strings.HasSuffix(line, " excluded") {
			excluded++
			assert.Contains(t, line, "values-")
		}
	}
	assert.Equal(t, 4, excluded)
}

func TestList_JSON(t *testing.T) {
	stubDeps(t, false)
	var out bytes.Buffer

	require.NoError(t, List("", FormatJSON, &out))

	var entries []listEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 36)
	assert.Equal(t, "gcc-dind-2404-amd64", entries[0].InstallationName)
	assert.Equal(t, "values-dind-amd64-numbat-gcc.yaml", entries[0].ValuesFile)
	assert.False(t, entries[0].Excluded)
}

func TestList_YAML(t *testing.T) {
	stubDeps(t, false)
	var out bytes.Buffer

	require.NoError(t, List("", FormatYAML, &out))

	var entries []listEntry
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 36)

	excluded := 0
	for _, e := range entries {
		if e.Excluded {
			excluded++
			assert.Equal(t, "go", e.Flavor)
			assert.Equal(t, "arm", e.Architecture)
		}
	}
	assert.Equal(t, 4, excluded)
}

func TestList_UnknownFormat(t *testing.T) {
	stubDeps(t, false)

	err := List("", "toml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "toml"`)
}
