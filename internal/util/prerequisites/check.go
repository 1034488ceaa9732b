// Package prerequisites checks that the tools the emitted commands depend
// on are installed.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool is a binary the printed commands expect on PATH.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required marks tools without which the commands cannot run.
	Required bool

	// VersionArgs are passed to the tool to print its version.
	VersionArgs []string

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// DefaultTools returns the tools the install and uninstall commands use.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "helm",
			Required:    true,
			VersionArgs: []string{"version", "--short"},
			Description: "Runs the printed install and uninstall commands",
			InstallURL:  "https://helm.sh/docs/intro/install/",
		},
		{
			Name:        "kubectl",
			Required:    false,
			VersionArgs: []string{"version", "--client"},
			Description: "Useful for inspecting runner pods and the arc-runners namespace",
			InstallURL:  "https://kubernetes.io/docs/tasks/tools/",
		},
	}
}

// CheckResult is the outcome for one tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults holds the outcome for every checked tool.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tool is missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error naming every missing required tool.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// lookPath and toolVersion are replaced in tests.
var (
	lookPath    = exec.LookPath
	toolVersion = runVersion
)

// Check looks up every tool on PATH.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := lookPath(tool.Name)
		if err != nil {
			results.Missing = append(results.Missing, tool)
			results.Results = append(results.Results, result)
			continue
		}

		result.Found = true
		result.Path = path
		if len(tool.VersionArgs) > 0 {
			result.Version = toolVersion(path, tool.VersionArgs)
		}
		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks [DefaultTools].
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// runVersion returns the first line the tool prints, or "" on failure.
func runVersion(path string, args []string) string {
	// #nosec G204 - path comes from LookPath on a fixed tool list
	output, err := exec.Command(path, args...).Output()
	if err != nil {
		return ""
	}
	first, _, _ := strings.Cut(string(output), "\n")
	return strings.TrimSpace(first)
}
