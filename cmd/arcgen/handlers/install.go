package handlers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/nubificus/arcgen/internal/generator"
)

// Install renders a values file per non-excluded combination and prints
// the matching helm install commands.
func Install(ctx context.Context, opts Options) error {
	log := logr.FromContextOrDiscard(ctx)

	cfg, records, err := prepare(&opts)
	if err != nil {
		return err
	}

	renderer, err := loadTemplate(cfg.Template)
	if err != nil {
		return err
	}
	gen := opts.newGenerator(cfg, generator.WithRenderer(renderer))

	log.V(1).Info("generating values", "records", len(records), "template", cfg.Template, "outputDir", cfg.OutputDir, "dryRun", opts.DryRun)

	report, err := gen.Install(ctx, records)
	if err != nil {
		return fmt.Errorf("install generation failed: %w", err)
	}

	if isInteractiveTTY() {
		_, _ = fmt.Fprint(opts.stderr(), renderSummary("install", cfg, len(records), report, opts.DryRun))
	}
	log.Info("generated install commands", "commands", len(report.Commands), "written", len(report.Written), "skipped", len(report.Skipped))

	return nil
}
