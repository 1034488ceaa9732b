package matrix

import (
	"errors"
	"fmt"

	"github.com/nubificus/arcgen/internal/config"
)

// ErrUnknownOSName is returned when an OS name has no version in the lookup.
var ErrUnknownOSName = errors.New("unknown os name")

// Generate returns every combination of the configured domains. Flavor
// varies slowest, then architecture, then OS name; dind varies fastest.
// No record is filtered here.
func Generate(cfg *config.Config) ([]Record, error) {
	records := make([]Record, 0, cfg.Size())

	for _, flavor := range cfg.Flavors {
		for _, arch := range cfg.Architectures {
			for _, osName := range cfg.OSNames {
				version, ok := cfg.OSVersions[osName]
				if !ok {
					return nil, fmt.Errorf("%w: %q has no entry in osVersions", ErrUnknownOSName, osName)
				}

				for _, dind := range cfg.DinD {
					records = append(records, Record{
						architecture:    arch,
						flavor:          flavor,
						osName:          osName,
						osVersion:       version,
						dind:            dind,
						githubConfigURL: cfg.GitHubConfigURL,
						githubPAT:       cfg.GitHubPAT,
						k8sSecret:       cfg.GitHubConfigSecret,
					})
				}
			}
		}
	}

	return records, nil
}

// Filter splits records into those kept for install and those excluded,
// preserving order.
func Filter(records []Record, exclusions []config.Exclusion) (kept, excluded []Record) {
	for _, r := range records {
		if r.Excluded(exclusions) {
			excluded = append(excluded, r)
			continue
		}
		kept = append(kept, r)
	}
	return kept, excluded
}
