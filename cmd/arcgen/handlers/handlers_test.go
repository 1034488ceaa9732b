package handlers

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubificus/arcgen/internal/config"
	"github.com/nubificus/arcgen/internal/generator"
	"github.com/nubificus/arcgen/internal/render"
)

const testTemplate = "githubConfigUrl: {{ .githubConfigUrl | quote }}\nrunner: {{ .runner_image }}\n"

// stubDeps replaces the factory variables for one test.
func stubDeps(t *testing.T, tty bool) {
	t.Helper()
	origLoad, origTemplate, origTTY := loadConfig, loadTemplate, isInteractiveTTY
	t.Cleanup(func() {
		loadConfig = origLoad
		loadTemplate = origTemplate
		isInteractiveTTY = origTTY
	})

	loadConfig = func(string) (*config.Config, error) {
		return config.Default(), nil
	}
	loadTemplate = func(string) (generator.Renderer, error) {
		return render.Parse("test", []byte(testTemplate))
	}
	isInteractiveTTY = func() bool { return tty }
}

func TestInstall(t *testing.T) {
	stubDeps(t, false)
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	err := Install(context.Background(), Options{OutputDir: dir, Out: &out, ErrOut: &errOut})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 32)

	output := out.String()
	assert.Equal(t, 36, strings.Count(output, "{architecture="), "one dump line per record")
	assert.Equal(t, 32, strings.Count(output, "helm install "))
	assert.Contains(t, output, `helm install "rust-dind-2204-amd64"`)
	assert.Contains(t, output, filepath.Join(dir, "values-dind-amd64-jammy-rust.yaml"))
	assert.Empty(t, errOut.String(), "no summary without a terminal")
}

func TestInstall_DumpPrecedesCommands(t *testing.T) {
	stubDeps(t, false)
	var out bytes.Buffer

	err := Install(context.Background(), Options{OutputDir: t.TempDir(), Out: &out, ErrOut: &bytes.Buffer{}})
	require.NoError(t, err)

	output := out.String()
	assert.Less(t, strings.LastIndex(output, "{architecture="), strings.Index(output, "helm install "))
}

func TestInstall_Quiet(t *testing.T) {
	stubDeps(t, false)
	var out bytes.Buffer

	err := Install(context.Background(), Options{OutputDir: t.TempDir(), Quiet: true, OneLine: true, Out: &out, ErrOut: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "{architecture=")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 32)
}

func TestInstall_TemplateOverride(t *testing.T) {
	stubDeps(t, false)
	var gotPath string
	loadTemplate = func(path string) (generator.Renderer, error) {
		gotPath = path
		return render.Parse("test", []byte(testTemplate))
	}

	err := Install(context.Background(), Options{TemplatePath: "custom.tmpl", DryRun: true, Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, "custom.tmpl", gotPath)
}

func TestInstall_TemplateNotFound(t *testing.T) {
	stubDeps(t, false)
	loadTemplate = func(path string) (generator.Renderer, error) {
		return render.Load(filepath.Join(t.TempDir(), "missing.tmpl"))
	}
	dir := t.TempDir()

	err := Install(context.Background(), Options{OutputDir: dir, Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrTemplateNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInstall_ConfigError(t *testing.T) {
	stubDeps(t, false)
	loadConfig = func(string) (*config.Config, error) {
		return nil, errors.New("configuration validation failed: namespace is required")
	}

	err := Install(context.Background(), Options{Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace is required")
}

func TestInstall_UnknownOSName(t *testing.T) {
	stubDeps(t, false)
	loadConfig = func(string) (*config.Config, error) {
		cfg := config.Default()
		cfg.OSNames = append(cfg.OSNames, "plucky")
		return cfg, nil
	}

	err := Install(context.Background(), Options{Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enumerate runner matrix")
}

func TestInstall_SummaryOnTerminal(t *testing.T) {
	stubDeps(t, true)
	var errOut bytes.Buffer

	err := Install(context.Background(), Options{OutputDir: t.TempDir(), Out: &bytes.Buffer{}, ErrOut: &errOut})
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "arcgen install")
	assert.Contains(t, errOut.String(), "Combinations:  36")
	assert.Contains(t, errOut.String(), "Values files:  32")
}

func TestUninstall(t *testing.T) {
	stubDeps(t, false)
	loadTemplate = func(string) (generator.Renderer, error) {
		t.Fatal("uninstall must not load the template")
		return nil, nil
	}
	dir := t.TempDir()
	var out bytes.Buffer

	err := Uninstall(context.Background(), Options{OutputDir: dir, Out: &out, ErrOut: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, 36, strings.Count(out.String(), "helm uninstall "))
	assert.Contains(t, out.String(), `helm uninstall "gcc-2404-arm64" --namespace "arc-runners"`+"\n")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRenderSummary(t *testing.T) {
	cfg := config.Default()

	s := renderSummary("uninstall", cfg, 36, &generator.Report{}, true)
	assert.Contains(t, s, "arcgen uninstall")
	assert.Contains(t, s, "arc-runners")
	assert.NotContains(t, s, "Values files")

	s = renderSummary("install", cfg, 36, &generator.Report{}, true)
	assert.Contains(t, s, "Dry run")
}
