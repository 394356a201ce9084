package atomic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// unitless lists properties whose numeric values take no px suffix.
var unitless = map[string]bool{
	"animationIterationCount": true,
	"columnCount":             true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"fontWeight":              true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// CSS serializes every rule of the sheet.
func (s *Sheet) CSS() string {
	var b strings.Builder
	for _, rule := range s.Rules() {
		writeRule(&b, s.prefix, rule.Selector, rule.Style, "")
	}
	return b.String()
}

// RuleCSS serializes a single rule for selector. Nested pseudo blocks,
// at-rules and keyframes are expanded.
func RuleCSS(selector string, style substyle.Tree) string {
	var b strings.Builder
	writeRule(&b, DefaultPrefix, selector, MapPseudoSelectors(style), "")
	return b.String()
}

func writeRule(b *strings.Builder, prefix, selector string, style substyle.Tree, indent string) {
	var decls []string
	type block struct {
		key   string
		style substyle.Tree
	}
	var nested []block
	var keyframes []string

	for _, key := range style.Keys() {
		value, _ := style.Get(key)
		sub, isTree := substyle.AsTree(value)
		switch {
		case key == "animationName" && isTree:
			name := prefix + "-kf-" + Hash(sub)
			keyframes = append(keyframes, keyframesCSS(name, sub))
			decls = append(decls, declaration(key, name))
		case isTree:
			nested = append(nested, block{key: key, style: sub})
		default:
			decls = append(decls, declaration(key, value))
		}
	}

	for _, kf := range keyframes {
		b.WriteString(indentLines(kf, indent))
	}
	if len(decls) > 0 {
		fmt.Fprintf(b, "%s%s {\n", indent, selector)
		for _, d := range decls {
			fmt.Fprintf(b, "%s  %s\n", indent, d)
		}
		fmt.Fprintf(b, "%s}\n", indent)
	}
	for _, n := range nested {
		switch {
		case strings.HasPrefix(n.key, "@"):
			fmt.Fprintf(b, "%s%s {\n", indent, n.key)
			writeRule(b, prefix, selector, n.style, indent+"  ")
			fmt.Fprintf(b, "%s}\n", indent)
		case strings.Contains(n.key, "&"):
			writeRule(b, prefix, strings.ReplaceAll(n.key, "&", selector), n.style, indent)
		default:
			writeRule(b, prefix, selector+" "+n.key, n.style, indent)
		}
	}
}

func keyframesCSS(name string, frames substyle.Tree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", name)
	for _, key := range frames.Keys() {
		value, _ := frames.Get(key)
		frame, ok := substyle.AsTree(value)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s {\n", key)
		for _, prop := range frame.Keys() {
			v, _ := frame.Get(prop)
			fmt.Fprintf(&b, "    %s\n", declaration(prop, v))
		}
		b.WriteString("  }\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func declaration(prop string, value any) string {
	return Hyphenate(prop) + ": " + FormatValue(prop, value) + ";"
}

// Hyphenate converts a camelCase property to its CSS name:
// "backgroundColor" becomes "background-color", "msFilter" "-ms-filter".
// Custom properties and already hyphenated names are kept.
func Hyphenate(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	var b strings.Builder
	for i, r := range prop {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if strings.HasPrefix(out, "ms-") || strings.HasPrefix(prop, "Webkit") || strings.HasPrefix(prop, "Moz") {
		out = "-" + out
	}
	return out
}

// FormatValue renders a declaration value. Numbers get a px unit unless
// the property is unitless or the number is zero.
func FormatValue(prop string, value any) string {
	var n string
	switch v := value.(type) {
	case string:
		return v
	case int:
		n = strconv.Itoa(v)
	case int64:
		n = strconv.FormatInt(v, 10)
	case float64:
		n = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		n = strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
	if n == "0" || unitless[prop] {
		return n
	}
	return n + "px"
}

func indentLines(s, indent string) string {
	if indent == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}
