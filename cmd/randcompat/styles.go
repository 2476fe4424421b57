package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(lipgloss.Color("14"))

	cellStyle = lipgloss.NewStyle().
			Width(12).
			Align(lipgloss.Right)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// row renders a name column followed by right-aligned cells.
func row(name string, cells ...string) string {
	parts := []string{nameStyle.Render(name)}
	for _, c := range cells {
		parts = append(parts, cellStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
