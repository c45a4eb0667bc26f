package cli

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#74c7ec")
	green  = lipgloss.Color("#a6e3a1")
	peach  = lipgloss.Color("#fab387")
	muted  = lipgloss.Color("#a6adc8")

	titleStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	doneStyle   = lipgloss.NewStyle().Foreground(green)
	hotStyle    = lipgloss.NewStyle().Foreground(peach).Bold(true)
	bannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

func check(ok bool) string {
	if ok {
		return doneStyle.Render("[x]")
	}
	return mutedStyle.Render("[ ]")
}

// progressBar renders percent (0..100) as a bar of width cells.
func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return doneStyle.Render(string(bar[:filled])) + mutedStyle.Render(string(bar[filled:]))
}
