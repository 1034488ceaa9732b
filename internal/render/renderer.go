package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"helm.sh/helm/v3/pkg/chartutil"
)

var (
	// ErrTemplateNotFound is returned when the template file does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateSyntax is returned when a template cannot be parsed or
	// refers to a key the record does not provide.
	ErrTemplateSyntax = errors.New("template error")

	// ErrInvalidValues is returned when a rendered document is not a
	// valid Helm values file.
	ErrInvalidValues = errors.New("rendered document is not valid values YAML")
)

// Renderer renders one parsed template. It is safe to reuse across records.
type Renderer struct {
	name string
	tmpl *template.Template
}

// Load reads and parses the template at path.
func Load(path string) (*Renderer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return Parse(filepath.Base(path), content)
}

// Parse builds a renderer from template source.
func Parse(name string, content []byte) (*Renderer, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse template %s: %v", ErrTemplateSyntax, name, err)
	}

	return &Renderer{name: name, tmpl: tmpl}, nil
}

// Name returns the template name.
func (r *Renderer) Name() string {
	return r.name
}

// Render executes the template with values.
func (r *Renderer) Render(values Values) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, map[string]any(values)); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template %s: %v", ErrTemplateSyntax, r.name, err)
	}

	return buf.Bytes(), nil
}

// Validate checks that a rendered document parses as a Helm values file.
func Validate(doc []byte) error {
	if _, err := chartutil.ReadValues(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValues, err)
	}
	return nil
}
