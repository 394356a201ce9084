package components

import (
	"strings"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// AlertVariant selects the tone of an alert.
type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

// String returns the modifier name of the variant.
func (v AlertVariant) String() string {
	switch v {
	case AlertVariantSuccess:
		return "success"
	case AlertVariantError:
		return "error"
	case AlertVariantWarning:
		return "warning"
	default:
		return "info"
	}
}

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
}

// AlertStyle returns the default style tree of alerts for theme. Elements:
// title, message, dismiss.
func AlertStyle(theme Theme) substyle.Tree {
	p, s := theme.Palette, theme.Spacing
	tone := func(c ColourSet) substyle.Tree {
		return tree(
			"borderColor", c.Base,
			"title", tree("color", c.Base),
		)
	}
	return tree(
		"border", theme.Border,
		"padding", box(0, s.Small),
		"title", tree("fontWeight", "bold"),
		"message", tree("color", p.Surface.OnBase),
		"dismiss", tree("color", p.Neutral.Base, "fontWeight", "bold"),
		"&success", tone(p.Slot(PaletteSuccess)),
		"&error", tone(p.Slot(PaletteDanger)),
		"&warning", tone(p.Slot(PaletteWarning)),
		"&info", tone(p.Slot(PaletteInfo)),
		"&dismissible", tree("paddingRight", s.Medium),
	)
}

// Alert represents a message alert component
type Alert struct {
	styled
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		styled:  newStyled("alert"),
		message: message,
		options: opts,
	}
}

// WithVariant sets the alert variant
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.options.Variant = variant
	return a
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// WithDismissible sets whether the alert can be dismissed
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.options.Dismissible = dismissible
	return a
}

// WithProps sets the caller style and class names.
func (a *Alert) WithProps(props substyle.Props) *Alert {
	a.setProps(props)
	return a
}

// Resolver returns the resolver for the current options.
func (a *Alert) Resolver() (*substyle.Resolver, error) {
	modifiers := substyle.Toggles{
		{Key: "&" + a.options.Variant.String(), On: true},
		{Key: "&dismissible", On: a.options.Dismissible},
	}
	return a.resolve(modifiers, CurrentStyles().Alert)
}

// View renders the alert
func (a *Alert) View() string {
	r, err := a.Resolver()
	if err != nil {
		return a.message
	}

	var content []string
	if a.options.Title != "" {
		content = append(content, part(r, "title", a.options.Title))
	}
	if a.message != "" {
		content = append(content, part(r, "message", a.message))
	}
	if a.options.Dismissible {
		content = append(content, part(r, "dismiss", "[×]"))
	}

	return a.spec(r, true).Render(strings.Join(content, "\n"))
}

// SimpleAlert creates an info alert without title
func SimpleAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantInfo})
}

// SuccessAlert creates a success alert
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantSuccess,
		Title:       "Success",
		Dismissible: true,
	})
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantError,
		Title:       "Error",
		Dismissible: true,
	})
}

// WarningAlert creates a warning alert
func WarningAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantWarning,
		Title:       "Warning",
		Dismissible: true,
	})
}

// InfoAlert creates an info alert
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{
		Variant:     AlertVariantInfo,
		Title:       "Info",
		Dismissible: true,
	})
}
