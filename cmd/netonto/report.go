package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-netontology/pkg/constraints"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)
)

func severityStyle(s constraints.Severity) lipgloss.Style {
	switch s {
	case constraints.Error:
		return errorStyle
	case constraints.Warning:
		return warningStyle
	default:
		return infoStyle
	}
}

// renderReport prints the validation outcome followed by one block per
// violation
func renderReport(w io.Writer, source string, result *constraints.ValidationResult) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Validation report: " + source))
	b.WriteString("\n")
	if result.Conforms {
		b.WriteString(successStyle.Render("✓ Conforms"))
	} else {
		b.WriteString(errorStyle.Render("✗ Does not conform"))
	}
	fmt.Fprintf(&b, "\nfocus nodes: %d  violations: %d  warnings: %d  info: %d",
		result.FocusNodes,
		len(result.GetViolationsBySeverity(constraints.Error)),
		len(result.GetViolationsBySeverity(constraints.Warning)),
		len(result.GetViolationsBySeverity(constraints.Info)))
	fmt.Fprintln(w, boxStyle.Render(b.String()))

	for _, v := range result.Violations {
		fmt.Fprintf(w, "%s %s %s\n",
			severityStyle(v.Severity).Render(fmt.Sprintf("[%s]", v.Severity)),
			constraints.ShortName(v.Focus),
			infoStyle.Render(v.Type.String()+" on "+constraints.ShortName(v.Path)))
		if !v.Value.IsZero() {
			fmt.Fprintf(w, "    value: %s\n", constraints.ShortName(v.Value))
		}
		fmt.Fprintf(w, "    %s\n", v.Message)
	}
}
