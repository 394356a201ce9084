package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// CardData represents the content and metadata of a card.
type CardData struct {
	// Title is the main heading displayed in the card
	Title string
	// Description is the main body text of the card
	Description string
	// Icon is an optional icon/emoji displayed before the title
	Icon string
	// Status selects the card's status modifier, e.g. "success"
	Status string
	// Metadata contains additional key-value pairs to display
	Metadata map[string]string
	// Actions is a list of actionable items related to the card
	Actions []string
}

// CardStatuses lists the statuses with a modifier in CardStyle.
var CardStatuses = []string{"success", "error", "warning", "info"}

var statusIcons = map[string]string{
	"success": "✓",
	"error":   "✗",
	"warning": "⚠",
	"info":    "ℹ",
}

// CardStyle returns the default style tree of cards for theme. Elements:
// header, icon, body, meta, actions.
func CardStyle(theme Theme) substyle.Tree {
	p, s := theme.Palette, theme.Spacing
	status := func(c ColourSet) substyle.Tree {
		return tree(
			"borderColor", c.Base,
			"icon", tree("color", c.Base),
			"header", tree("color", c.Muted),
		)
	}
	return tree(
		"border", theme.Border,
		"borderColor", p.Neutral.Muted,
		"padding", box(0, s.Small),
		"width", 60,
		"header", tree("fontWeight", "bold", "color", p.Primary.Base),
		"icon", tree("color", p.Info.Base),
		"body", tree("color", p.Surface.OnBase),
		"meta", tree("color", p.Neutral.Base),
		"actions", tree("color", p.Secondary.Base),
		"&success", status(p.Success),
		"&error", status(p.Danger),
		"&warning", status(p.Warning),
		"&info", status(p.Info),
	)
}

// Card represents a reusable card component styled through a resolver.
type Card struct {
	styled
	data CardData
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{
		styled: newStyled("card"),
		data:   data,
	}
}

// WithProps sets the caller style and class names. The caller style
// outranks the theme defaults.
func (c *Card) WithProps(props substyle.Props) *Card {
	c.setProps(props)
	return c
}

// WithDecorator sets the decorator applied to every resolved node.
func (c *Card) WithDecorator(decorator substyle.Decorator) *Card {
	c.setDecorator(decorator)
	return c
}

// WithWidth overrides the card width in cells.
func (c *Card) WithWidth(width int) *Card {
	c.inline = c.inline.Set("width", width)
	return c
}

// WithBorder overrides the border style, e.g. "double".
func (c *Card) WithBorder(border string) *Card {
	c.inline = c.inline.Set("borderStyle", border)
	return c
}

// Resolver returns the resolver for the card status.
func (c *Card) Resolver() (*substyle.Resolver, error) {
	var modifiers substyle.Toggles
	if c.data.Status != "" {
		modifiers = substyle.Toggles{{Key: "&" + c.data.Status, On: true}}
	}
	return c.resolve(modifiers, CurrentStyles().Card)
}

// View renders the card.
func (c *Card) View() string {
	r, err := c.Resolver()
	if err != nil {
		return c.data.Title
	}

	var content []string

	if header := c.renderHeader(r); header != "" {
		content = append(content, header)
	}

	if c.data.Description != "" {
		content = append(content, part(r, "body", c.data.Description))
	}

	if c.data.Status != "" {
		content = append(content, "", part(r, "meta", c.data.Status))
	}

	if len(c.data.Metadata) > 0 {
		content = append(content, "")
		keys := make([]string, 0, len(c.data.Metadata))
		for k := range c.data.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			content = append(content, part(r, "meta", fmt.Sprintf("%s: %s", key, c.data.Metadata[key])))
		}
	}

	if len(c.data.Actions) > 0 {
		content = append(content, "")
		for _, action := range c.data.Actions {
			content = append(content, part(r, "actions", "• "+action))
		}
	}

	return c.spec(r, true).Render(strings.Join(content, "\n"))
}

func (c *Card) renderHeader(r *substyle.Resolver) string {
	if c.data.Title == "" {
		return ""
	}
	var header strings.Builder
	if c.data.Icon != "" {
		header.WriteString(part(r, "icon", c.data.Icon+" "))
	}
	header.WriteString(part(r, "header", c.data.Title))
	return header.String()
}

// StatusCard creates a card with the status modifier selected and a default
// icon for the status.
func StatusCard(data CardData, status string) *Card {
	data.Status = status
	if data.Icon == "" {
		data.Icon = statusIcons[status]
	}
	return NewCard(data)
}
