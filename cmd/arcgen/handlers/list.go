package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/nubificus/arcgen/internal/config"
	"github.com/nubificus/arcgen/internal/helm"
	"github.com/nubificus/arcgen/internal/matrix"
)

// Output formats supported by List.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// listEntry is the machine-readable form of a record.
type listEntry struct {
	Architecture     string `json:"architecture"`
	Flavor           string `json:"flavor"`
	OSName           string `json:"osname"`
	OSVersion        string `json:"osversion"`
	DinD             bool   `json:"dind"`
	RunnerImage      string `json:"runner_image"`
	InstallationName string `json:"installation_name"`
	ValuesFile       string `json:"values_file"`
	Excluded         bool   `json:"excluded"`
}

// List prints the runner matrix without writing any file.
func List(configPath, format string, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	records, err := matrix.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to enumerate runner matrix: %w", err)
	}

	entries := make([]listEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, newListEntry(cfg, r))
	}

	switch format {
	case FormatText, "":
		if err := writeListText(out, entries); err != nil {
			return err
		}
		kept, excluded := matrix.Filter(records, cfg.Exclude)
		_, err := fmt.Fprintf(out, "\n%d combinations, %d to install, %d excluded\n", len(records), len(kept), len(excluded))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = out.Write(data)
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatText, FormatYAML, FormatJSON)
	}
}

func newListEntry(cfg *config.Config, r matrix.Record) listEntry {
	return listEntry{
		Architecture:     r.Architecture(),
		Flavor:           r.Flavor(),
		OSName:           r.OSName(),
		OSVersion:        r.OSVersion(),
		DinD:             r.DinD(),
		RunnerImage:      r.RunnerImage(),
		InstallationName: helm.InstallationName(r),
		ValuesFile:       helm.ValuesFileName(r),
		Excluded:         r.Excluded(cfg.Exclude),
	}
}

func writeListText(out io.Writer, entries []listEntry) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-26s %-38s %s\n", "RELEASE", "VALUES FILE", "STATUS"))
	for _, e := range entries {
		status := "install"
		if e.Excluded {
			status = "excluded"
		}
		b.WriteString(fmt.Sprintf("%-26s %-38s %s\n", e.InstallationName, e.ValuesFile, status))
	}
	_, err := io.WriteString(out, b.String())
	return err
}
