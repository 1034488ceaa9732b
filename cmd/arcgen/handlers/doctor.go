package handlers

import (
	"fmt"
	"io"

	"github.com/nubificus/arcgen/internal/util/prerequisites"
)

// checkTools is replaced in tests.
var checkTools = prerequisites.CheckDefault

// Doctor reports whether the tools the printed commands need are on PATH.
func Doctor(out io.Writer) error {
	results := checkTools()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Prerequisites")
	fmt.Fprintln(out, "  =============")
	for _, r := range results.Results {
		printToolRow(out, r)
	}
	fmt.Fprintln(out)

	return results.Error()
}

func printToolRow(out io.Writer, r prerequisites.CheckResult) {
	indicator := "\u2705" // green check
	detail := r.Version
	if detail == "" {
		detail = r.Path
	}

	if !r.Found {
		indicator = "\u274c" // red X
		if !r.Tool.Required {
			indicator = "\u26a0\ufe0f" // warning
		}
		detail = "not found, see " + r.Tool.InstallURL
	}

	fmt.Fprintf(out, "  %s  %-10s %s\n", indicator, r.Tool.Name, detail)
}
