package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Coverage renders how many declarations of a style have a terminal
// rendition.
type Coverage struct {
	bar   progress.Model
	total int
}

// NewCoverage creates a coverage bar for total declarations.
func NewCoverage(total int) Coverage {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return Coverage{bar: bar, total: total}
}

// View renders the bar for the number of supported declarations.
func (c Coverage) View(supported int) string {
	ratio := 1.0
	if c.total > 0 {
		ratio = math.Max(0, math.Min(1.0, float64(supported)/float64(c.total)))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", supported, c.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", c.bar.ViewAs(ratio))
}
