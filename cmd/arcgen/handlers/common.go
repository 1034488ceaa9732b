package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nubificus/arcgen/internal/config"
	"github.com/nubificus/arcgen/internal/generator"
	"github.com/nubificus/arcgen/internal/matrix"
	"github.com/nubificus/arcgen/internal/render"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads and validates the configuration file.
	loadConfig = config.Load

	// loadTemplate reads and parses the values template.
	loadTemplate = func(path string) (generator.Renderer, error) {
		return render.Load(path)
	}

	// isInteractiveTTY reports whether the summary should be styled.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
)

// Options holds the flags shared by the generating commands.
type Options struct {
	// ConfigPath is the arcgen.yaml to load; empty uses the defaults.
	ConfigPath string

	// TemplatePath overrides the configured template.
	TemplatePath string

	// OutputDir overrides the configured output directory.
	OutputDir string

	DryRun  bool
	OneLine bool

	// Quiet suppresses the per-record dump.
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

func (o *Options) stdout() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o *Options) stderr() io.Writer {
	if o.ErrOut != nil {
		return o.ErrOut
	}
	return os.Stderr
}

// newGenerator builds a generator honoring the output flags.
func (o *Options) newGenerator(cfg *config.Config, extra ...generator.Option) *generator.Generator {
	genOpts := []generator.Option{
		generator.WithDryRun(o.DryRun),
		generator.WithOneLine(o.OneLine),
	}
	return generator.New(cfg, o.stdout(), append(genOpts, extra...)...)
}

// prepare loads the configuration, applies flag overrides and enumerates
// the matrix. The record dump is printed here so every mode shows it.
func prepare(opts *Options) (*config.Config, []matrix.Record, error) {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if opts.TemplatePath != "" {
		cfg.Template = opts.TemplatePath
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	records, err := matrix.Generate(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enumerate runner matrix: %w", err)
	}

	if !opts.Quiet {
		if err := opts.newGenerator(cfg).Dump(records); err != nil {
			return nil, nil, err
		}
	}

	return cfg, records, nil
}
