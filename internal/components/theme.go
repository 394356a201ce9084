package components

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// ColourSet groups the CSS colours of one semantic palette slot.
type ColourSet struct {
	Base   string
	OnBase string
	Muted  string
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a ColourSet of a Palette.
type PaletteSlot int

const (
	PalettePrimary PaletteSlot = iota
	PaletteSecondary
	PaletteSurface
	PaletteSuccess
	PaletteWarning
	PaletteDanger
	PaletteInfo
	PaletteNeutral
)

// Slot returns the colours of slot. Unknown slots fall back to Neutral.
func (p Palette) Slot(slot PaletteSlot) ColourSet {
	switch slot {
	case PalettePrimary:
		return p.Primary
	case PaletteSecondary:
		return p.Secondary
	case PaletteSurface:
		return p.Surface
	case PaletteSuccess:
		return p.Success
	case PaletteWarning:
		return p.Warning
	case PaletteDanger:
		return p.Danger
	case PaletteInfo:
		return p.Info
	default:
		return p.Neutral
	}
}

// Spacing is the spacing scale in terminal cells.
type Spacing struct {
	Small  int
	Medium int
	Large  int
}

// Theme holds the tokens the default component styles are built from.
type Theme struct {
	Name    string
	Palette Palette
	Spacing Spacing
	// Border is a CSS border style name, e.g. "rounded".
	Border string
}

// Styles are the default style trees of every component for one theme.
type Styles struct {
	Button substyle.Tree
	Card   substyle.Tree
	Alert  substyle.Tree
}

// NewStyles builds the default style trees for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Button: ButtonStyle(theme),
		Card:   CardStyle(theme),
		Alert:  AlertStyle(theme),
	}
}

// ThemeManager coordinates access to a Theme and the styles derived from
// it. The style trees keep their identity until the theme changes, so
// resolvers stay memoized between renders.
type ThemeManager struct {
	mu     sync.RWMutex
	theme  Theme
	styles Styles
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme, styles: NewStyles(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	styles := NewStyles(theme)
	m.mu.Lock()
	m.theme = theme
	m.styles = styles
	m.mu.Unlock()
}

// Theme returns the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Styles returns the default style trees of the managed theme.
func (m *ThemeManager) Styles() Styles {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.styles
}

var defaultManager = NewThemeManager(DefaultTheme())

// SetTheme replaces the theme used by every component.
func SetTheme(theme Theme) {
	defaultManager.SetTheme(theme)
}

// GetTheme returns the theme used by every component.
func GetTheme() Theme {
	return defaultManager.Theme()
}

// CurrentStyles returns the default style trees of the current theme.
func CurrentStyles() Styles {
	return defaultManager.Styles()
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "light",
		Palette: Palette{
			Primary:   ColourSet{Base: "#3b82f6", OnBase: "#f8fafc", Muted: "#2563eb"},
			Secondary: ColourSet{Base: "#a855f7", OnBase: "#f8fafc", Muted: "#7c3aed"},
			Surface:   ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0"},
			Success:   ColourSet{Base: "#22c55e", OnBase: "#052e16", Muted: "#16a34a"},
			Warning:   ColourSet{Base: "#eab308", OnBase: "#422006", Muted: "#ca8a04"},
			Danger:    ColourSet{Base: "#ef4444", OnBase: "#7f1d1d", Muted: "#dc2626"},
			Info:      ColourSet{Base: "#06b6d4", OnBase: "#083344", Muted: "#0891b2"},
			Neutral:   ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#475569"},
		},
		Spacing: Spacing{Small: 1, Medium: 2, Large: 3},
		Border:  "rounded",
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Palette.Primary = ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8"}
	theme.Palette.Surface = ColourSet{Base: "#0b1120", OnBase: "#e5e7eb", Muted: "#111827"}
	theme.Palette.Neutral = ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#334155"}
	return theme
}

// Themes lists the built-in themes by name.
func Themes() map[string]Theme {
	return map[string]Theme{
		"light": DefaultTheme(),
		"dark":  DarkTheme(),
	}
}

func box(vertical, horizontal int) string {
	return fmt.Sprintf("%d %d", vertical, horizontal)
}

func filled(c ColourSet) substyle.Tree {
	return tree("background", c.Base, "color", c.OnBase, "borderColor", c.Muted)
}

// tree builds a style tree from alternating keys and values.
func tree(kv ...any) substyle.Tree {
	t := make(substyle.Tree, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		t = append(t, substyle.Entry{Key: kv[i].(string), Value: kv[i+1]})
	}
	return t
}
