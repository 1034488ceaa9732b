package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nubificus/arcgen/internal/config"
	"github.com/nubificus/arcgen/internal/generator"
)

var (
	summaryColorBlue = lipgloss.Color("#3b82f6")
	summaryColorDim  = lipgloss.Color("#6b7280")
	summaryColorOK   = lipgloss.Color("#22c55e")
	summaryColorWarn = lipgloss.Color("#f59e0b")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryOKStyle = lipgloss.NewStyle().
			Foreground(summaryColorOK)

	summaryWarnStyle = lipgloss.NewStyle().
				Foreground(summaryColorWarn)
)

// renderSummary produces a lipgloss-styled run summary for stderr.
func renderSummary(mode string, cfg *config.Config, total int, report *generator.Report, dryRun bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render(fmt.Sprintf("  arcgen %s", mode)))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("─", 30)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("    Namespace:     %s\n", cfg.Namespace))
	b.WriteString(fmt.Sprintf("    Combinations:  %d\n", total))
	b.WriteString(fmt.Sprintf("    Commands:      %s\n", summaryOKStyle.Render(fmt.Sprint(len(report.Commands)))))

	if len(report.Skipped) > 0 {
		b.WriteString(fmt.Sprintf("    Excluded:      %s\n", summaryWarnStyle.Render(fmt.Sprint(len(report.Skipped)))))
	}

	switch {
	case mode == "uninstall":
	case dryRun:
		b.WriteString(summaryDimStyle.Render("    Dry run: no values files written"))
		b.WriteString("\n")
	default:
		b.WriteString(fmt.Sprintf("    Values files:  %d in %s\n", len(report.Written), cfg.OutputDir))
	}

	return b.String()
}
