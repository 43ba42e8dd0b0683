package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/unitx/internal/compare"
	"github.com/desertthunder/unitx/internal/models"
)

var styles = newPalette()

// palette holds one [lipgloss.Style] per comparison state the TUI renders.
type palette struct {
	banner        lipgloss.Style
	cheapest      lipgloss.Style
	savings       lipgloss.Style
	mostExpensive lipgloss.Style
	tied          lipgloss.Style
	rejected      lipgloss.Style
	prompt        lipgloss.Style
	muted         lipgloss.Style
	label         lipgloss.Style
}

func newPalette() palette {
	green := lipgloss.AdaptiveColor{Light: "#0B7A3E", Dark: "#3DDC84"}
	red := lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#FF6B6B"}
	amber := lipgloss.AdaptiveColor{Light: "#8A5A00", Dark: "#FFB74D"}
	grey := lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8C8C8C"}

	return palette{
		banner:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E7D9A")).MarginBottom(1),
		cheapest:      lipgloss.NewStyle().Bold(true).Foreground(green),
		savings:       lipgloss.NewStyle().Foreground(green),
		mostExpensive: lipgloss.NewStyle().Foreground(red),
		tied:          lipgloss.NewStyle().Bold(true).Foreground(amber),
		rejected:      lipgloss.NewStyle().Bold(true).Foreground(red),
		prompt:        lipgloss.NewStyle().Foreground(amber),
		muted:         lipgloss.NewStyle().Italic(true).Foreground(grey),
		label:         lipgloss.NewStyle().Foreground(grey).Width(16),
	}
}

// headline styles line i of the result banner for summary s.
func (p palette) headline(s compare.Summary, i int, line string) string {
	switch {
	case s.Comparable() && s.Tied:
		return p.tied.Render(line)
	case s.Comparable() && i == 0:
		return p.cheapest.Render(line)
	case s.Comparable():
		return p.savings.Render(line)
	case i > 0:
		return p.muted.Render(line)
	default:
		return line
	}
}

// entry styles the list title of e: green for the cheapest offer, red for the baseline.
func (p palette) entry(e models.Entry, s compare.Summary, title string) string {
	switch {
	case s.IsCheapest(e):
		return p.cheapest.Render(title + " ★ cheapest")
	case s.IsMostExpensive(e):
		return p.mostExpensive.Render(title + " ▲ most expensive")
	default:
		return title
	}
}
