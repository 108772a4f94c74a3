package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	positionStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	noticeStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// View renders the header, the framed status display and the key help.
func (m Model) View() string {
	if len(m.themes) == 0 {
		return noticeStyle.Render("no themes to preview") + "\n"
	}

	var b strings.Builder
	header := titleStyle.Render(m.Theme()) +
		positionStyle.Render(fmt.Sprintf("%d/%d · chip %s", m.index+1, len(m.themes), m.chip))
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(frameStyle.Render(m.Frame()))
	b.WriteString("\n")

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		help = append(help, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	b.WriteString(strings.Join(help, helpDescStyle.Render(" · ")))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	return b.String()
}
