package config

// DefaultConfigFilename is the configuration file looked up by default.
const DefaultConfigFilename = "arcgen.yaml"

// Defaults for the stock runner matrix.
const (
	// DefaultNamespace is the namespace every scale set is installed into.
	DefaultNamespace = "arc-runners"

	// DefaultChart is the OCI reference of the runner scale set chart.
	DefaultChart = "oci://ghcr.io/actions/actions-runner-controller-charts/gha-runner-scale-set"

	// DefaultGitHubConfigURL is the organization the runners register with.
	DefaultGitHubConfigURL = "https://github.com/nubificus"

	// DefaultGitHubConfigSecret names the pre-created Kubernetes secret
	// holding the GitHub credentials.
	DefaultGitHubConfigSecret = "pre-defined-secret"

	// DefaultTemplatePath is resolved relative to the working directory.
	DefaultTemplatePath = "templates/template.yaml.tmpl"

	// DefaultOutputDir is where rendered values files are written.
	DefaultOutputDir = "."
)

// Environment variables read by [ApplyEnv].
const (
	EnvGitHubPAT          = "GITHUB_PAT"
	EnvGitHubConfigSecret = "ARC_GITHUB_CONFIG_SECRET"
	EnvNamespace          = "ARC_NAMESPACE"
)
