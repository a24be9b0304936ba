// Package render turns report results into styled terminal output. It sits
// outside the optics core: nothing here reads or updates records, it only
// formats values the generic logic already produced.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7d8590")).Width(14)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f2f2f2"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

// Summary is the flattened result of running the report operations against
// one record.
type Summary struct {
	Name      string
	Community int
	Budgets   []int
	Total     int
}

// RenderSummary renders a one-record report.
func RenderSummary(s Summary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(s.Name))
	b.WriteString("\n")
	b.WriteString(row("community", fmt.Sprintf("%d", s.Community)))
	for i, budget := range s.Budgets {
		b.WriteString(row(fmt.Sprintf("department %d", i), fmt.Sprintf("%d", budget)))
	}
	b.WriteString(row("total budget", fmt.Sprintf("%d", s.Total)))
	return b.String()
}

// RenderCheck renders the outcome of a cross-variant comparison.
func RenderCheck(name string, ok bool, detail string) string {
	verdict := okStyle.Render("agree")
	if !ok {
		verdict = failStyle.Render("DISAGREE")
	}
	out := fmt.Sprintf("%s %s", labelStyle.Render(name), verdict)
	if detail != "" {
		out += "\n" + valueStyle.Render(detail)
	}
	return out
}

func row(label, value string) string {
	return labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n"
}
