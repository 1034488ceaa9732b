package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/nubificus/arcgen/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// writeConfig writes the config to a file.
	writeConfig = config.Save
)

// Init writes the default configuration to outputPath.
func Init(outputPath string, out io.Writer) error {
	if fileExists(outputPath) {
		fmt.Fprintf(out, "Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	cfg := config.Default()
	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "Configuration saved to %s\n\n", outputPath)
	fmt.Fprintf(out, "  Combinations:  %d\n", cfg.Size())
	fmt.Fprintf(out, "  Namespace:     %s\n", cfg.Namespace)
	fmt.Fprintf(out, "  Template:      %s\n\n", cfg.Template)
	fmt.Fprintln(out, "Next Steps")
	fmt.Fprintln(out, "----------")
	fmt.Fprintf(out, "  1. Export %s or create the %q secret in %s\n", config.EnvGitHubPAT, cfg.GitHubConfigSecret, cfg.Namespace)
	fmt.Fprintf(out, "  2. arcgen list -c %s\n", outputPath)
	fmt.Fprintf(out, "  3. arcgen install -c %s\n", outputPath)

	return nil
}
