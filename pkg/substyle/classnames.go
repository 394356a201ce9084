package substyle

import "strings"

// ClassMapping maps a derived BEM class name to the class name to emit.
type ClassMapping struct {
	Name  string
	Class string
}

// ClassNames is an ordered class-name remapping, e.g. produced by a CSS
// modules loader. A non-nil ClassNames turns off literal BEM class names:
// every derived name is looked up and names without a mapping are dropped.
// The first entry names the base class when no className is given.
type ClassNames []ClassMapping

// Lookup returns the class mapped to name.
func (c ClassNames) Lookup(name string) (string, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Name == name {
			return c[i].Class, true
		}
	}
	return "", false
}

// guessBaseClassName takes the block part of the first mapping: all keys
// share the component's base class as prefix.
func guessBaseClassName(c ClassNames) string {
	if len(c) == 0 {
		return ""
	}
	first := c[0].Name
	first, _, _ = strings.Cut(first, "__")
	first, _, _ = strings.Cut(first, "--")
	return first
}

// deriveClassNames builds BEM class names for a selection. Without element
// keys the full className is kept and one base--modifier name is added per
// modifier; with element keys only base__element names are produced.
func deriveClassNames(className string, elements, modifiers []string) []string {
	words := strings.Fields(className)
	if len(words) == 0 {
		return nil
	}
	base := words[0]

	if len(elements) > 0 {
		out := make([]string, 0, len(elements))
		for _, key := range elements {
			out = append(out, base+"__"+key)
		}
		return out
	}

	out := append(make([]string, 0, len(words)+len(modifiers)), words...)
	for _, key := range modifiers {
		out = append(out, base+"--"+key[1:])
	}
	return out
}

func mapClassNames(names []string, c ClassNames) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if mapped, ok := c.Lookup(name); ok && mapped != "" {
			out = append(out, mapped)
		}
	}
	return out
}
