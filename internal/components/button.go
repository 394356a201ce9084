package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// ButtonVariant selects the colour scheme of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

var buttonVariantNames = []string{"primary", "secondary", "success", "error", "warning", "info", "muted"}

// String returns the modifier name of the variant.
func (v ButtonVariant) String() string {
	if v < 0 || int(v) >= len(buttonVariantNames) {
		return buttonVariantNames[0]
	}
	return buttonVariantNames[v]
}

// ButtonSize represents different button sizes
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// String returns the modifier name of the size.
func (s ButtonSize) String() string {
	switch s {
	case ButtonSizeSmall:
		return "small"
	case ButtonSizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Focus    bool
}

// Modifiers returns the modifier toggles the options stand for.
func (o ButtonOptions) Modifiers() substyle.Toggles {
	return substyle.Toggles{
		{Key: "&" + o.Variant.String(), On: true},
		{Key: "&" + o.Size.String(), On: true},
		{Key: "&focus", On: o.Focus && !o.Disabled},
		{Key: "&disabled", On: o.Disabled},
	}
}

// ButtonStyle returns the default style tree of buttons for theme.
func ButtonStyle(theme Theme) substyle.Tree {
	p, s := theme.Palette, theme.Spacing
	return tree(
		"padding", box(0, s.Medium),
		"border", theme.Border,
		"fontWeight", "bold",
		"&primary", filled(p.Primary),
		"&secondary", filled(p.Secondary),
		"&success", filled(p.Success),
		"&error", filled(p.Danger),
		"&warning", filled(p.Warning),
		"&info", filled(p.Info),
		"&muted", filled(p.Neutral),
		"&small", tree("padding", box(0, s.Small)),
		"&large", tree("padding", box(s.Small, s.Large)),
		"&focus", tree("borderStyle", "thick", "borderColor", p.Primary.Base),
		"&disabled", tree("opacity", 0.5, "color", p.Neutral.Base, "borderColor", p.Neutral.Muted),
	)
}

// Button represents a clickable button component
type Button struct {
	styled
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		styled:  newStyled("button"),
		label:   label,
		options: opts,
	}
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size ButtonSize) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// WithProps sets the caller style and class names. The caller style
// outranks the theme defaults.
func (b *Button) WithProps(props substyle.Props) *Button {
	b.setProps(props)
	return b
}

// WithDecorator sets the decorator applied to every resolved node.
func (b *Button) WithDecorator(decorator substyle.Decorator) *Button {
	b.setDecorator(decorator)
	return b
}

// Resolver returns the resolver for the current options.
func (b *Button) Resolver() (*substyle.Resolver, error) {
	return b.resolve(b.options.Modifiers(), CurrentStyles().Button)
}

// View renders the button
func (b *Button) View() string {
	r, err := b.Resolver()
	if err != nil {
		return b.label
	}
	return b.spec(r, true).Render(b.label)
}

// SimpleButton creates a button with sensible defaults
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{
		Variant: ButtonVariantPrimary,
		Size:    ButtonSizeMedium,
	})
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: GetTheme().Spacing.Small,
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	spacer := strings.Repeat(" ", bg.spacing)
	views := make([]string, 0, 2*len(bg.buttons)-1)
	for i, button := range bg.buttons {
		if i > 0 {
			views = append(views, spacer)
		}
		views = append(views, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
