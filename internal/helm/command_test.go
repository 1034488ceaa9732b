package helm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testChart = "oci://ghcr.io/actions/actions-runner-controller-charts/gha-runner-scale-set"

func TestInstall_String(t *testing.T) {
	t.Parallel()
	cmd := Install("rust-dind-2204-amd64", "arc-runners", "https://github.com/nubificus", testChart, "values-dind-amd64-jammy-rust.yaml")

	assert.Equal(t,
		`helm install "rust-dind-2204-amd64" --namespace "arc-runners" --create-namespace `+
			`--set githubConfigUrl="https://github.com/nubificus" `+testChart+` -f values-dind-amd64-jammy-rust.yaml`,
		cmd.String())
}

func TestInstall_Multiline(t *testing.T) {
	t.Parallel()
	cmd := Install("gcc-2404-arm64", "arc-runners", "https://github.com/nubificus", testChart, "values-arm64-numbat-gcc.yaml")

	expected := `helm install "gcc-2404-arm64" \
    --namespace "arc-runners" \
    --create-namespace \
    --set githubConfigUrl="https://github.com/nubificus" \
    ` + testChart + ` -f values-arm64-numbat-gcc.yaml`
	assert.Equal(t, expected, cmd.Multiline())
}

func TestUninstall(t *testing.T) {
	t.Parallel()
	cmd := Uninstall("gcc-2404-arm64", "arc-runners")

	assert.Equal(t, `helm uninstall "gcc-2404-arm64" --namespace "arc-runners"`, cmd.String())
	assert.Equal(t, cmd.String(), cmd.Multiline())
	assert.Equal(t, []string{"helm", "uninstall", `"gcc-2404-arm64"`, "--namespace", `"arc-runners"`}, cmd.Args())
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{`with "quotes"`, `"with \"quotes\""`},
		{"$HOME", `"\$HOME"`},
		{"`id`", "\"\\`id\\`\""},
		{`back\slash`, `"back\\slash"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, quote(tt.in))
		})
	}
}
