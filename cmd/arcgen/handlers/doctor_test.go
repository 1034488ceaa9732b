package handlers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubificus/arcgen/internal/util/prerequisites"
)

func stubTools(t *testing.T, results *prerequisites.CheckResults) {
	t.Helper()
	orig := checkTools
	t.Cleanup(func() { checkTools = orig })
	checkTools = func() *prerequisites.CheckResults { return results }
}

func TestDoctor_AllFound(t *testing.T) {
	tools := prerequisites.DefaultTools()
	stubTools(t, &prerequisites.CheckResults{Results: []prerequisites.CheckResult{
		{Tool: tools[0], Found: true, Path: "/usr/local/bin/helm", Version: "v3.20.0+g1234567"},
		{Tool: tools[1], Found: true, Path: "/usr/bin/kubectl"},
	}})
	var out bytes.Buffer

	require.NoError(t, Doctor(&out))
	assert.Contains(t, out.String(), "v3.20.0+g1234567")
	assert.Contains(t, out.String(), "/usr/bin/kubectl")
}

func TestDoctor_MissingHelm(t *testing.T) {
	tools := prerequisites.DefaultTools()
	stubTools(t, &prerequisites.CheckResults{
		Results: []prerequisites.CheckResult{{Tool: tools[0]}, {Tool: tools[1]}},
		Missing: tools,
	})
	var out bytes.Buffer

	err := Doctor(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required tools: helm")
	assert.Contains(t, out.String(), "not found, see https://helm.sh/docs/intro/install/")
	assert.Contains(t, out.String(), "⚠️")
}
