package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps CSS colour keywords onto terminal colours. The sixteen
// basic keywords use ANSI indexes so they follow the terminal palette.
var namedColors = map[string]lipgloss.Color{
	"black":   "0",
	"maroon":  "1",
	"green":   "2",
	"olive":   "3",
	"navy":    "4",
	"purple":  "5",
	"teal":    "6",
	"silver":  "7",
	"gray":    "8",
	"grey":    "8",
	"red":     "9",
	"lime":    "10",
	"yellow":  "11",
	"blue":    "12",
	"fuchsia": "13",
	"magenta": "13",
	"aqua":    "14",
	"cyan":    "14",
	"white":   "15",

	"orange":     "#ffa500",
	"pink":       "#ffc0cb",
	"brown":      "#a52a2a",
	"gold":       "#ffd700",
	"indigo":     "#4b0082",
	"violet":     "#ee82ee",
	"crimson":    "#dc143c",
	"coral":      "#ff7f50",
	"salmon":     "#fa8072",
	"tomato":     "#ff6347",
	"skyblue":    "#87ceeb",
	"steelblue":  "#4682b4",
	"slategray":  "#708090",
	"darkgray":   "#a9a9a9",
	"lightgray":  "#d3d3d3",
	"whitesmoke": "#f5f5f5",
}

// Color parses a CSS colour: a keyword, "#rgb", "#rrggbb", "rgb(r, g, b)" or
// an ANSI index.
func Color(value any) (lipgloss.TerminalColor, bool) {
	if n, ok := value.(int); ok {
		if n < 0 || n > 255 {
			return nil, false
		}
		return lipgloss.Color(strconv.Itoa(n)), true
	}
	s, ok := value.(string)
	if !ok {
		return nil, false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent" || s == "inherit" || s == "currentcolor":
		return lipgloss.NoColor{}, true
	case strings.HasPrefix(s, "#"):
		return hexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return rgbColor(s[len("rgb(") : len(s)-1])
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(s), true
	}
	return nil, false
}

func hexColor(hex string) (lipgloss.TerminalColor, bool) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, false
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return nil, false
	}
	return lipgloss.Color("#" + hex), true
}

func rgbColor(args string) (lipgloss.TerminalColor, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, false
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return nil, false
		}
		if n < 16 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(int64(n), 16))
	}
	return lipgloss.Color(b.String()), true
}
