package helm

import (
	"fmt"

	"helm.sh/helm/v3/pkg/chartutil"

	"github.com/nubificus/arcgen/internal/matrix"
)

func dindSuffix(r matrix.Record) string {
	if r.DinD() {
		return "-dind"
	}
	return ""
}

// InstallationName returns the release name for a record:
// {flavor}{-dind}-{osversion}-{architecture}.
func InstallationName(r matrix.Record) string {
	return fmt.Sprintf("%s%s-%s-%s", r.Flavor(), dindSuffix(r), r.OSVersion(), r.Architecture())
}

// ValuesFileName returns the values file name for a record:
// values{-dind}-{architecture}-{runner_image}.yaml.
func ValuesFileName(r matrix.Record) string {
	return fmt.Sprintf("values%s-%s-%s.yaml", dindSuffix(r), r.Architecture(), r.RunnerImage())
}

// ReleaseName returns the installation name after checking it against
// Helm's release naming rules.
func ReleaseName(r matrix.Record) (string, error) {
	name := InstallationName(r)
	if err := chartutil.ValidateReleaseName(name); err != nil {
		return "", fmt.Errorf("invalid release name %q: %w", name, err)
	}
	return name, nil
}
