package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates what a resolved node spreads onto its element.
type SummaryData struct {
	ClassName   string
	Modifiers   []string
	Unsupported []string
	Err         error
}

// Summary renders a textual resolution summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	if s.data.Err != nil {
		return fmt.Sprintf("✗ %v", s.data.Err)
	}

	var lines []string
	if s.data.ClassName != "" {
		lines = append(lines, "className: "+s.data.ClassName)
	}
	if len(s.data.Modifiers) > 0 {
		lines = append(lines, "modifiers: "+strings.Join(s.data.Modifiers, " "))
	}
	if len(s.data.Unsupported) > 0 {
		lines = append(lines, "not rendered: "+strings.Join(s.data.Unsupported, ", "))
	}
	return strings.Join(lines, "\n")
}
