package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"helm.sh/helm/v3/pkg/registry"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the configuration and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	errs = append(errs, validateDomain("flavors", c.Flavors)...)
	errs = append(errs, validateDomain("architectures", c.Architectures)...)
	errs = append(errs, validateDomain("osNames", c.OSNames)...)

	if len(c.DinD) == 0 {
		errs = append(errs, errors.New("dind must list at least one value"))
	} else if len(c.DinD) > 2 || (len(c.DinD) == 2 && c.DinD[0] == c.DinD[1]) {
		errs = append(errs, fmt.Errorf("dind values must be unique, got %v", c.DinD))
	}

	errs = append(errs, c.validateOSVersions()...)

	if c.GitHubConfigURL == "" {
		errs = append(errs, errors.New("githubConfigUrl is required"))
	} else if u, err := url.Parse(c.GitHubConfigURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("githubConfigUrl %q must be an absolute URL", c.GitHubConfigURL))
	}

	if c.GitHubPAT == "" && c.GitHubConfigSecret == "" {
		errs = append(errs, errors.New("githubConfigSecret is required when no personal access token is set"))
	}

	if c.Namespace == "" {
		errs = append(errs, errors.New("namespace is required"))
	} else if msgs := validation.IsDNS1123Label(c.Namespace); len(msgs) > 0 {
		errs = append(errs, fmt.Errorf("invalid namespace %q: %s", c.Namespace, strings.Join(msgs, "; ")))
	}

	if c.Chart == "" {
		errs = append(errs, errors.New("chart is required"))
	} else if !registry.IsOCI(c.Chart) {
		errs = append(errs, fmt.Errorf("chart %q must be an %s:// reference", c.Chart, registry.OCIScheme))
	}

	if c.Template == "" {
		errs = append(errs, errors.New("template is required"))
	}

	for i, e := range c.Exclude {
		if e.IsEmpty() {
			errs = append(errs, fmt.Errorf("exclude[%d] matches every combination", i))
		}
	}

	return errors.Join(errs...)
}

// validateDomain requires a non-empty list of unique, non-empty values that
// are safe to embed in release and file names.
func validateDomain(field string, values []string) []error {
	if len(values) == 0 {
		return []error{fmt.Errorf("%s must list at least one value", field)}
	}

	var errs []error
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			errs = append(errs, fmt.Errorf("%s: duplicate value %q", field, v))
			continue
		}
		seen[v] = true

		if msgs := validation.IsDNS1123Label(v); len(msgs) > 0 {
			errs = append(errs, fmt.Errorf("%s: invalid value %q: %s", field, v, strings.Join(msgs, "; ")))
		}
	}
	return errs
}

// validateOSVersions requires a lookup entry for every OS name and distinct
// versions, since the version is all that tells two OS names apart in a
// release name.
func (c *Config) validateOSVersions() []error {
	var errs []error
	owners := make(map[string]string, len(c.OSNames))
	for _, name := range c.OSNames {
		version, ok := c.OSVersions[name]
		if !ok || version == "" {
			errs = append(errs, fmt.Errorf("osVersions: no version for os name %q", name))
			continue
		}
		if other, dup := owners[version]; dup {
			errs = append(errs, fmt.Errorf("osVersions: %q and %q share version %q", other, name, version))
			continue
		}
		owners[version] = name
	}
	return errs
}
