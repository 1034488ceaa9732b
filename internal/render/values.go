package render

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Values is the data passed to a template.
type Values map[string]any

// FromYAML parses YAML bytes into Values.
func FromYAML(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse YAML values: %w", err)
	}
	return values, nil
}
