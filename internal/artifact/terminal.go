package artifact

import (
	"github.com/charmbracelet/lipgloss"

	"scopedraft/internal/plan"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderTerminal renders an artifact as a framed block for CLI display.
// The body stays literal for every kind; only the frame is styled.
func RenderTerminal(a *plan.Artifact, width int) string {
	rendered := Render(a)
	if rendered.Format == FormatEmpty {
		return ""
	}

	header := titleStyle.Render(rendered.Title)
	if a != nil && a.Kind != "" {
		header += " " + kindStyle.Render("("+string(a.Kind)+")")
	}

	style := frameStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(header + "\n\n" + rendered.Body)
}
