package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/substyle/internal/inspect"
	"github.com/alexisbeaulieu97/substyle/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("substyle • " + m.title())}

	if m.items.Len() > 0 {
		sections = append(sections, sectionStyle.Render("Keys"), m.items.View(m.top().cursor))
	} else {
		sections = append(sections, mutedStyle.Render("no modifiers or elements"))
	}

	spec := m.spec()
	summary := components.SummaryData{
		Modifiers:   m.top().modifiers,
		Unsupported: spec.Unsupported,
		Err:         m.err,
	}
	if m.current != nil {
		summary.ClassName = m.current.ClassName()
	}
	if text := components.NewSummary(summary).View(); text != "" {
		if m.err != nil {
			text = errorStyle.Render(text)
		}
		sections = append(sections, sectionStyle.Render("Resolved"), text)
	}

	if m.current != nil && m.current.HasStyle() {
		style := m.current.Style()
		sections = append(sections,
			sectionStyle.Render("Style"),
			strings.TrimRight(inspect.Tree("style", style), "\n"),
			components.NewCoverage(len(style)).View(len(style)-len(spec.Unsupported)),
			previewStyle.Render(spec.Render(m.opts.Preview)),
		)
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	parts := append([]string{m.comp.Name}, m.Path()...)
	return strings.Join(parts, " › ")
}
