package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

func TestCardViewWithTitleOnly(t *testing.T) {
	t.Parallel()

	view := NewCard(CardData{Title: "Deploy"}).View()
	assert.Contains(t, view, "Deploy")
	assert.Equal(t, 60, lipgloss.Width(view)-2)
}

func TestCardViewWithAllFields(t *testing.T) {
	t.Parallel()

	card := NewCard(CardData{
		Title:       "Pipeline",
		Description: "Builds the project",
		Icon:        "*",
		Status:      "success",
		Metadata:    map[string]string{"zeta": "last", "alpha": "first"},
		Actions:     []string{"retry", "open"},
	})

	view := card.View()
	for _, want := range []string{"* Pipeline", "Builds the project", "success", "• retry", "• open"} {
		assert.Contains(t, view, want)
	}
	assert.Less(t, strings.Index(view, "alpha: first"), strings.Index(view, "zeta: last"))
}

func TestCardElementsFollowStatus(t *testing.T) {
	t.Parallel()

	palette := GetTheme().Palette

	r, err := NewCard(CardData{Title: "x", Status: "error"}).Resolver()
	require.NoError(t, err)
	assert.Equal(t, "card card--error", r.ClassName())
	assert.Equal(t, palette.Danger.Base, r.Style().Map()["borderColor"])

	icon := r.MustSelect("icon")
	assert.Equal(t, "card__icon", icon.ClassName())
	assert.Equal(t, map[string]any{"color": palette.Danger.Base}, icon.Style().Map())

	header := r.MustSelect("header")
	assert.Equal(t, map[string]any{"fontWeight": "bold", "color": palette.Danger.Muted}, header.Style().Map())

	plain, err := NewCard(CardData{Title: "x"}).Resolver()
	require.NoError(t, err)
	assert.Equal(t, palette.Info.Base, plain.MustSelect("icon").Style().Map()["color"])
}

func TestCardInlineOverrides(t *testing.T) {
	t.Parallel()

	card := NewCard(CardData{Description: strings.Repeat("word ", 20)}).
		WithWidth(20).
		WithBorder("double")

	view := card.View()
	lines := strings.Split(view, "\n")
	assert.Greater(t, len(lines), 3)
	assert.Equal(t, 22, lipgloss.Width(view))
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
}

func TestCardClassNamesMapping(t *testing.T) {
	t.Parallel()

	card := NewCard(CardData{Title: "x", Status: "warning"}).WithProps(substyle.Props{
		ClassNames: substyle.ClassNames{
			{Name: "card", Class: "c"},
			{Name: "card--warning", Class: "c-warn"},
			{Name: "card__header", Class: "c-h"},
		},
	})

	r, err := card.Resolver()
	require.NoError(t, err)
	assert.Equal(t, "c c-warn", r.ClassName())
	assert.Equal(t, "c-h", r.MustSelect("header").ClassName())
	assert.Empty(t, r.MustSelect("icon").ClassName())
}

func TestStatusCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		icon   string
	}{
		{"success", "✓"},
		{"error", "✗"},
		{"warning", "⚠"},
		{"info", "ℹ"},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()
			card := StatusCard(CardData{Title: "Job"}, tt.status)
			assert.Equal(t, tt.icon, card.data.Icon)
			assert.Equal(t, tt.status, card.data.Status)
			assert.Contains(t, card.View(), "Job")
		})
	}
}

func TestStatusCardCustomIcon(t *testing.T) {
	t.Parallel()

	card := StatusCard(CardData{Title: "Job", Icon: "!"}, "success")
	assert.Equal(t, "!", card.data.Icon)
}
