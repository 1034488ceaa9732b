package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// Uninstall prints a helm uninstall command for every combination,
// exclusions included. No files are read or written besides the config.
func Uninstall(ctx context.Context, opts Options) error {
	log := logr.FromContextOrDiscard(ctx)

	cfg, records, err := prepare(&opts)
	if err != nil {
		return err
	}

	report, err := opts.newGenerator(cfg).Uninstall(ctx, records)
	if err != nil {
		return fmt.Errorf("uninstall generation failed: %w", err)
	}

	if isInteractiveTTY() {
		_, _ = fmt.Fprint(opts.stderr(), renderSummary("uninstall", cfg, len(records), report, true))
	}
	log.Info("generated uninstall commands", "commands", len(report.Commands))

	return nil
}
