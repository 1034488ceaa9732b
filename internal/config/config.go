package config

// Config is the generator configuration. Field order in the parameter
// slices defines enumeration order.
type Config struct {
	// Flavors are the toolchain variants baked into runner images.
	Flavors []string `yaml:"flavors"`

	// Architectures are the CPU targets, used as kubernetes.io/arch values.
	Architectures []string `yaml:"architectures"`

	// OSNames are the base OS identifiers.
	OSNames []string `yaml:"osNames"`

	// OSVersions maps every OS name to the version used in release names.
	OSVersions map[string]string `yaml:"osVersions"`

	// DinD lists the docker-in-docker toggles to generate.
	DinD []bool `yaml:"dind"`

	// GitHubConfigURL is the organization or repository runners register with.
	GitHubConfigURL string `yaml:"githubConfigUrl"`

	// GitHubPAT is never read from the file; see [ApplyEnv].
	GitHubPAT string `yaml:"-"`

	// GitHubConfigSecret names the Kubernetes secret with GitHub credentials.
	GitHubConfigSecret string `yaml:"githubConfigSecret"`

	// Namespace is the install namespace for every scale set.
	Namespace string `yaml:"namespace"`

	// Chart is the OCI reference of the scale set chart.
	Chart string `yaml:"chart"`

	// Template is the path of the values template.
	Template string `yaml:"template"`

	// OutputDir receives the rendered values files.
	OutputDir string `yaml:"outputDir"`

	// Exclude lists unsupported combinations skipped on install.
	Exclude []Exclusion `yaml:"exclude,omitempty"`
}

// Exclusion matches records to skip on install. Empty fields match anything.
type Exclusion struct {
	Flavor       string `yaml:"flavor,omitempty"`
	Architecture string `yaml:"architecture,omitempty"`
	OSName       string `yaml:"osName,omitempty"`
	DinD         *bool  `yaml:"dind,omitempty"`
}

// Matches reports whether the combination is covered by the exclusion.
func (e Exclusion) Matches(flavor, arch, osName string, dind bool) bool {
	if e.Flavor != "" && e.Flavor != flavor {
		return false
	}
	if e.Architecture != "" && e.Architecture != arch {
		return false
	}
	if e.OSName != "" && e.OSName != osName {
		return false
	}
	if e.DinD != nil && *e.DinD != dind {
		return false
	}
	return true
}

// IsEmpty reports whether the exclusion has no constraints and would match
// every record.
func (e Exclusion) IsEmpty() bool {
	return e.Flavor == "" && e.Architecture == "" && e.OSName == "" && e.DinD == nil
}

// Default returns the stock runner matrix.
func Default() *Config {
	return &Config{
		Flavors:       []string{"gcc", "go", "rust"},
		Architectures: []string{"amd64", "arm64", "arm"},
		OSNames:       []string{"numbat", "jammy"},
		OSVersions: map[string]string{
			"numbat": "2404",
			"jammy":  "2204",
		},
		DinD:               []bool{true, false},
		GitHubConfigURL:    DefaultGitHubConfigURL,
		GitHubConfigSecret: DefaultGitHubConfigSecret,
		Namespace:          DefaultNamespace,
		Chart:              DefaultChart,
		Template:           DefaultTemplatePath,
		OutputDir:          DefaultOutputDir,
		Exclude: []Exclusion{
			// There is no go toolchain image for 32-bit arm.
			{Architecture: "arm", Flavor: "go"},
		},
	}
}

// Size returns the number of combinations the matrix produces.
func (c *Config) Size() int {
	return len(c.Flavors) * len(c.Architectures) * len(c.OSNames) * len(c.DinD)
}
