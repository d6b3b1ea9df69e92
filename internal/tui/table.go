// Package tui renders check results and batch progress in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/i18n"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			PaddingRight(2)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingRight(2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginTop(1)

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusUpToDate: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.StatusOutdated: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		models.StatusNewer:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.StatusNotFound: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		models.StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.StatusUnknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
)

// StatusStyle returns the colour used for a status.
func StatusStyle(s models.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return cellStyle
}

// RenderTable lays out one row per result with aligned columns.
func RenderTable(results []models.CheckResult) string {
	header := []string{
		i18n.T("table.software", nil),
		i18n.T("table.current", nil),
		i18n.T("table.latest", nil),
		i18n.T("table.source", nil),
		i18n.T("table.status", nil),
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		latest, source := "-", "-"
		if r.LatestVersion != nil {
			latest = r.LatestVersion.Version
			source = string(r.LatestVersion.Source)
		}
		current := r.CurrentVersion
		if current == "" {
			current = "-"
		}
		rows = append(rows, []string{r.Software.Name, current, latest, source, r.Message})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for i, h := range header {
		b.WriteString(headerStyle.Width(widths[i] + 2).Render(h))
	}
	b.WriteString("\n")
	for n, row := range rows {
		for i, cell := range row {
			style := cellStyle
			if i == len(row)-1 {
				style = StatusStyle(results[n].Status).PaddingRight(2)
			}
			b.WriteString(style.Width(widths[i] + 2).Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSummary renders the batch statistics as a single line.
func RenderSummary(stats models.BatchStatistics) string {
	return summaryStyle.Render(i18n.T("summary.line", map[string]interface{}{
		"Total":    stats.Total,
		"UpToDate": stats.UpToDate,
		"Outdated": stats.Outdated,
		"NotFound": stats.NotFound,
		"Error":    stats.Error,
	}))
}
