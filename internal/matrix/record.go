package matrix

import (
	"fmt"
	"strings"

	"github.com/nubificus/arcgen/internal/config"
	"github.com/nubificus/arcgen/internal/render"
)

// Template keys exposed by [Record.Values].
const (
	KeyArchitecture    = "architecture"
	KeyFlavor          = "flavor"
	KeyOSName          = "osname"
	KeyOSVersion       = "osversion"
	KeyDinD            = "dind"
	KeyRunnerImage     = "runner_image"
	KeyGitHubConfigURL = "githubConfigUrl"
	KeyGitHubPAT       = "github_pat"
	KeyK8sSecret       = "k8s_secret"
)

// Record is one point of the parameter matrix. Fields are unexported so a
// record cannot be changed after [Generate] builds it.
type Record struct {
	architecture    string
	flavor          string
	osName          string
	osVersion       string
	dind            bool
	githubConfigURL string
	githubPAT       string
	k8sSecret       string
}

func (r Record) Architecture() string    { return r.architecture }
func (r Record) Flavor() string          { return r.flavor }
func (r Record) OSName() string          { return r.osName }
func (r Record) OSVersion() string       { return r.osVersion }
func (r Record) DinD() bool              { return r.dind }
func (r Record) GitHubConfigURL() string { return r.githubConfigURL }
func (r Record) GitHubPAT() string       { return r.githubPAT }
func (r Record) K8sSecret() string       { return r.k8sSecret }

// RunnerImage returns the runner image identifier, {osname}-{flavor}.
func (r Record) RunnerImage() string {
	return fmt.Sprintf("%s-%s", r.osName, r.flavor)
}

// Excluded reports whether any exclusion covers the record.
func (r Record) Excluded(exclusions []config.Exclusion) bool {
	for _, e := range exclusions {
		if e.Matches(r.flavor, r.architecture, r.osName, r.dind) {
			return true
		}
	}
	return false
}

// Values returns the template data for the record. Only these keys are
// visible to templates.
func (r Record) Values() render.Values {
	return render.Values{
		KeyArchitecture:    r.architecture,
		KeyFlavor:          r.flavor,
		KeyOSName:          r.osName,
		KeyOSVersion:       r.osVersion,
		KeyDinD:            r.dind,
		KeyRunnerImage:     r.RunnerImage(),
		KeyGitHubConfigURL: r.githubConfigURL,
		KeyGitHubPAT:       r.githubPAT,
		KeyK8sSecret:       r.k8sSecret,
	}
}

// String renders the record on one line with the token redacted.
func (r Record) String() string {
	pat := ""
	if r.githubPAT != "" {
		pat = "<redacted>"
	}

	fields := []string{
		KeyArchitecture + "=" + r.architecture,
		KeyFlavor + "=" + r.flavor,
		KeyOSName + "=" + r.osName,
		KeyOSVersion + "=" + r.osVersion,
		fmt.Sprintf("%s=%t", KeyDinD, r.dind),
		KeyRunnerImage + "=" + r.RunnerImage(),
		KeyGitHubConfigURL + "=" + r.githubConfigURL,
		KeyGitHubPAT + "=" + pat,
		KeyK8sSecret + "=" + r.k8sSecret,
	}
	return "{" + strings.Join(fields, " ") + "}"
}
