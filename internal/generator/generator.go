package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/nubificus/arcgen/internal/config"
	"github.com/nubificus/arcgen/internal/helm"
	"github.com/nubificus/arcgen/internal/matrix"
	"github.com/nubificus/arcgen/internal/render"
)

// ErrDuplicateOutput is returned when two records map to the same values
// file or release name.
var ErrDuplicateOutput = errors.New("duplicate output")

// Renderer renders template values into a document.
type Renderer interface {
	Render(values render.Values) ([]byte, error)
}

// Report summarizes a run.
type Report struct {
	// Written lists the values files written, in order.
	Written []string
	// Skipped lists records removed by exclusions.
	Skipped []matrix.Record
	// Commands lists the emitted commands, in order.
	Commands []helm.Command
}

// Generator emits helm commands and values files for a configuration.
type Generator struct {
	cfg       *config.Config
	renderer  Renderer
	out       io.Writer
	dryRun    bool
	oneLine   bool
	writeFile func(name string, data []byte, perm fs.FileMode) error
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the template renderer. Install requires one.
func WithRenderer(r Renderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithDryRun disables values file writes.
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) { g.dryRun = dryRun }
}

// WithOneLine prints install commands on a single line.
func WithOneLine(oneLine bool) Option {
	return func(g *Generator) { g.oneLine = oneLine }
}

// New returns a generator printing to out.
func New(cfg *config.Config, out io.Writer, opts ...Option) *Generator {
	g := &Generator{
		cfg:       cfg,
		out:       out,
		writeFile: os.WriteFile,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dump prints one line per record.
func (g *Generator) Dump(records []matrix.Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintln(g.out, r.String()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// Uninstall prints one teardown command per record. Exclusions do not
// apply and nothing is written to disk.
func (g *Generator) Uninstall(ctx context.Context, records []matrix.Record) (*Report, error) {
	log := logr.FromContextOrDiscard(ctx)
	report := &Report{}

	for _, r := range records {
		cmd := helm.Uninstall(helm.InstallationName(r), g.cfg.Namespace)
		if _, err := fmt.Fprintln(g.out, cmd.String()); err != nil {
			return report, fmt.Errorf("failed to write command: %w", err)
		}
		report.Commands = append(report.Commands, cmd)
		log.V(1).Info("emitted uninstall command", "release", helm.InstallationName(r))
	}

	return report, nil
}

// Install renders and writes a values file for every record not covered by
// an exclusion and prints its install command. The first failure aborts
// the run; files already written are left in place.
func (g *Generator) Install(ctx context.Context, records []matrix.Record) (*Report, error) {
	if g.renderer == nil {
		return nil, errors.New("install requires a template renderer")
	}

	log := logr.FromContextOrDiscard(ctx)
	report := &Report{}
	files := make(map[string]bool)
	releases := make(map[string]bool)

	for _, r := range records {
		if r.Excluded(g.cfg.Exclude) {
			report.Skipped = append(report.Skipped, r)
			log.V(1).Info("skipping excluded combination", "record", r.String())
			continue
		}

		name, err := helm.ReleaseName(r)
		if err != nil {
			return report, err
		}
		file := helm.ValuesFileName(r)

		if files[file] {
			return report, fmt.Errorf("%w: values file %s", ErrDuplicateOutput, file)
		}
		if releases[name] {
			return report, fmt.Errorf("%w: release %s", ErrDuplicateOutput, name)
		}
		files[file] = true
		releases[name] = true

		doc, err := g.renderer.Render(r.Values())
		if err != nil {
			return report, fmt.Errorf("failed to render %s: %w", file, err)
		}
		if err := render.Validate(doc); err != nil {
			return report, fmt.Errorf("failed to render %s: %w", file, err)
		}

		path := filepath.Join(g.cfg.OutputDir, file)
		if !g.dryRun {
			if err := g.writeFile(path, doc, 0644); err != nil {
				return report, fmt.Errorf("failed to write %s: %w", path, err)
			}
			report.Written = append(report.Written, path)
			log.V(1).Info("wrote values file", "path", path)
		}

		cmd := helm.Install(name, g.cfg.Namespace, r.GitHubConfigURL(), g.cfg.Chart, path)
		if err := g.printInstall(cmd); err != nil {
			return report, err
		}
		report.Commands = append(report.Commands, cmd)
	}

	return report, nil
}

func (g *Generator) printInstall(cmd helm.Command) error {
	var err error
	if g.oneLine {
		_, err = fmt.Fprintln(g.out, cmd.String())
	} else {
		_, err = fmt.Fprintf(g.out, "\n%s\n\n", cmd.Multiline())
	}
	if err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	return nil
}
