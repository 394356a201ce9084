// Package render turns resolved style trees into lipgloss styles so that
// components can be previewed in a terminal.
package render

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// PixelsPerCell is the number of CSS pixels mapped onto one terminal cell.
const PixelsPerCell = 8

// Spec is the terminal rendition of a style tree.
type Spec struct {
	Style lipgloss.Style
	// Hidden is set by "display: none".
	Hidden bool
	// Unsupported lists the keys that have no terminal equivalent, in tree
	// order.
	Unsupported []string
}

// Render renders text with the spec style.
func (s Spec) Render(text string) string {
	if s.Hidden {
		return ""
	}
	return s.Style.Render(text)
}

// Render renders text with the direct style of r.
func Render(r *substyle.Resolver, text string) string {
	return Translate(r.Style()).Render(text)
}

// Translate maps the declarations of tree onto a lipgloss style. Blocks named
// in states (e.g. ":hover") are applied over the direct declarations; every
// other nested block is reported as unsupported.
func Translate(tree substyle.Tree, states ...string) Spec {
	t := translator{spec: Spec{Style: lipgloss.NewStyle()}}
	t.apply(tree, states)
	for _, state := range states {
		if block, ok := tree.Subtree(state); ok {
			t.apply(block, nil)
		}
	}
	t.finish()
	return t.spec
}

type translator struct {
	spec    Spec
	border  *lipgloss.Border
	rounded bool
}

func (t *translator) apply(tree substyle.Tree, states []string) {
	for _, e := range tree {
		if _, nested := substyle.AsTree(e.Value); nested {
			if !slices.Contains(states, e.Key) {
				t.unsupported(e.Key)
			}
			continue
		}
		if !t.declare(e.Key, e.Value) {
			t.unsupported(e.Key)
		}
	}
}

func (t *translator) unsupported(key string) {
	if !slices.Contains(t.spec.Unsupported, key) {
		t.spec.Unsupported = append(t.spec.Unsupported, key)
	}
}

func (t *translator) finish() {
	if t.border == nil {
		return
	}
	border := *t.border
	if t.rounded && border == lipgloss.NormalBorder() {
		border = lipgloss.RoundedBorder()
	}
	t.spec.Style = t.spec.Style.Border(border)
}

// declare applies one declaration and reports whether it was understood.
func (t *translator) declare(prop string, value any) bool {
	st := t.spec.Style
	switch substyle.Camelize(prop) {
	case "color":
		c, ok := Color(value)
		if !ok {
			return false
		}
		st = st.Foreground(c)
	case "background", "backgroundColor":
		c, ok := Color(value)
		if !ok {
			return false
		}
		st = st.Background(c)
	case "fontWeight":
		bold, ok := fontWeight(value)
		if !ok {
			return false
		}
		st = st.Bold(bold)
	case "fontStyle":
		switch text(value) {
		case "italic", "oblique":
			st = st.Italic(true)
		case "normal":
			st = st.Italic(false)
		default:
			return false
		}
	case "textDecoration", "textDecorationLine":
		for _, word := range strings.Fields(text(value)) {
			switch word {
			case "underline":
				st = st.Underline(true)
			case "line-through":
				st = st.Strikethrough(true)
			case "none":
				st = st.Underline(false).Strikethrough(false)
			default:
				return false
			}
		}
	case "opacity":
		f, ok := number(value)
		if !ok {
			return false
		}
		st = st.Faint(f < 1)
	case "padding":
		cells, ok := Box(value)
		if !ok {
			return false
		}
		st = st.Padding(cells...)
	case "paddingTop", "paddingRight", "paddingBottom", "paddingLeft":
		n, ok := Cells(value)
		if !ok {
			return false
		}
		st = side(st, prop, n, lipgloss.Style.PaddingTop, lipgloss.Style.PaddingRight, lipgloss.Style.PaddingBottom, lipgloss.Style.PaddingLeft)
	case "margin":
		cells, ok := Box(value)
		if !ok {
			return false
		}
		st = st.Margin(cells...)
	case "marginTop", "marginRight", "marginBottom", "marginLeft":
		n, ok := Cells(value)
		if !ok {
			return false
		}
		st = side(st, prop, n, lipgloss.Style.MarginTop, lipgloss.Style.MarginRight, lipgloss.Style.MarginBottom, lipgloss.Style.MarginLeft)
	case "width", "height", "maxWidth", "maxHeight":
		n, ok := Cells(value)
		if !ok {
			return false
		}
		switch substyle.Camelize(prop) {
		case "width":
			st = st.Width(n)
		case "height":
			st = st.Height(n)
		case "maxWidth":
			st = st.MaxWidth(n)
		default:
			st = st.MaxHeight(n)
		}
	case "textAlign":
		switch text(value) {
		case "left", "start":
			st = st.Align(lipgloss.Left)
		case "center":
			st = st.Align(lipgloss.Center)
		case "right", "end":
			st = st.Align(lipgloss.Right)
		default:
			return false
		}
	case "border":
		if !t.borderShorthand(value) {
			return false
		}
		st = t.spec.Style
	case "borderStyle":
		b, ok := Border(text(value))
		if !ok {
			return false
		}
		t.border = b
	case "borderColor":
		c, ok := Color(value)
		if !ok {
			return false
		}
		st = st.BorderForeground(c)
	case "borderRadius":
		n, ok := number(value)
		if !ok {
			if _, ok = Cells(value); !ok {
				return false
			}
			n = 1
		}
		t.rounded = n > 0
	case "textTransform":
		fn, ok := transform(text(value))
		if !ok {
			return false
		}
		st = st.Transform(fn)
	case "display":
		t.spec.Hidden = text(value) == "none"
	default:
		return false
	}
	t.spec.Style = st
	return true
}

// borderShorthand handles "border: 1px solid red" style values.
func (t *translator) borderShorthand(value any) bool {
	if n, ok := number(value); ok {
		if n == 0 {
			t.border = nil
			return true
		}
		b := lipgloss.NormalBorder()
		t.border = &b
		return true
	}
	for _, word := range strings.Fields(text(value)) {
		if b, ok := Border(word); ok {
			t.border = b
			continue
		}
		if _, ok := Cells(word); ok {
			continue
		}
		c, ok := Color(word)
		if !ok {
			return false
		}
		t.spec.Style = t.spec.Style.BorderForeground(c)
	}
	if t.border == nil {
		b := lipgloss.NormalBorder()
		t.border = &b
	}
	return true
}

func side(st lipgloss.Style, prop string, n int, top, right, bottom, left func(lipgloss.Style, int) lipgloss.Style) lipgloss.Style {
	switch {
	case strings.HasSuffix(prop, "Top") || strings.HasSuffix(prop, "-top"):
		return top(st, n)
	case strings.HasSuffix(prop, "Right") || strings.HasSuffix(prop, "-right"):
		return right(st, n)
	case strings.HasSuffix(prop, "Bottom") || strings.HasSuffix(prop, "-bottom"):
		return bottom(st, n)
	default:
		return left(st, n)
	}
}

// Border returns the lipgloss border for a CSS border style. A nil border
// with ok set means "none".
func Border(name string) (*lipgloss.Border, bool) {
	var b lipgloss.Border
	switch name {
	case "none":
		return nil, true
	case "solid", "normal":
		b = lipgloss.NormalBorder()
	case "rounded":
		b = lipgloss.RoundedBorder()
	case "thick", "bold":
		b = lipgloss.ThickBorder()
	case "double":
		b = lipgloss.DoubleBorder()
	case "hidden":
		b = lipgloss.HiddenBorder()
	case "dashed", "dotted":
		b = lipgloss.ASCIIBorder()
	case "block":
		b = lipgloss.BlockBorder()
	default:
		return nil, false
	}
	return &b, true
}

// Box parses a one to four value padding or margin shorthand into cells.
func Box(value any) ([]int, bool) {
	if n, ok := Cells(value); ok {
		return []int{n}, true
	}
	s, ok := value.(string)
	if !ok {
		return nil, false
	}
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 4 {
		return nil, false
	}
	cells := make([]int, len(words))
	for i, w := range words {
		n, ok := Cells(w)
		if !ok {
			return nil, false
		}
		cells[i] = n
	}
	return cells, true
}

// Cells converts a length to terminal cells. Bare numbers are cells; pixel
// lengths are divided by PixelsPerCell, rounding up.
func Cells(value any) (int, bool) {
	if f, ok := number(value); ok {
		if f < 0 {
			return 0, false
		}
		return int(f + 0.5), true
	}
	s, ok := value.(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	div := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s, div = strings.TrimSuffix(s, "px"), PixelsPerCell
	case strings.HasSuffix(s, "ch"):
		s = strings.TrimSuffix(s, "ch")
	case strings.HasSuffix(s, "em"):
		s, div = strings.TrimSuffix(s, "em"), 0.5
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	n := f / div
	cells := int(n)
	if float64(cells) < n {
		cells++
	}
	return cells, true
}

func number(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func text(value any) string {
	s, _ := value.(string)
	return strings.ToLower(strings.TrimSpace(s))
}

func fontWeight(value any) (bool, bool) {
	switch text(value) {
	case "bold", "bolder":
		return true, true
	case "normal", "lighter":
		return false, true
	}
	n, ok := number(value)
	if !ok {
		return false, false
	}
	return n >= 600, true
}

func transform(name string) (func(string) string, bool) {
	switch name {
	case "uppercase":
		return strings.ToUpper, true
	case "lowercase":
		return strings.ToLower, true
	case "capitalize":
		return capitalize, true
	case "none":
		return func(s string) string { return s }, true
	default:
		return nil, false
	}
}

// capitalize upper-cases the first letter of every word and keeps the rest.
func capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
