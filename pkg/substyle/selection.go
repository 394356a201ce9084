package substyle

import (
	"sort"
	"strings"
)

// memoSeparator joins selection keys for memoization. Style keys never
// contain it, unlike spaces which show up in at-rule keys.
const memoSeparator = "\x1f"

// Selection is an ordered list of element and modifier keys.
type Selection []string

// Toggle switches a single key on or off.
type Toggle struct {
	Key string
	On  bool
}

// Toggles is an ordered key→bool selector. Unlike map[string]bool it keeps
// the caller's order.
type Toggles []Toggle

// Coerce normalizes a selector into a Selection.
//
// Accepted selectors are nil, false and "" (empty selection), a string, a
// []string or Selection, Toggles and map[string]bool. Map keys are sorted
// since Go maps have no order. Any other value reports false.
func Coerce(selector any) (Selection, bool) {
	switch s := selector.(type) {
	case nil:
		return Selection{}, true
	case bool:
		if s {
			return nil, false
		}
		return Selection{}, true
	case string:
		if s == "" {
			return Selection{}, true
		}
		return Selection{s}, true
	case Selection:
		return append(Selection{}, s...), true
	case []string:
		return append(Selection{}, s...), true
	case Toggles:
		out := make(Selection, 0, len(s))
		for _, t := range s {
			if t.On {
				out = append(out, t.Key)
			}
		}
		return out, true
	case map[string]bool:
		out := make(Selection, 0, len(s))
		for k, on := range s {
			if on {
				out = append(out, k)
			}
		}
		sort.Strings(out)
		return out, true
	default:
		return nil, false
	}
}

// Modifiers returns the modifier keys of s in order.
func (s Selection) Modifiers() []string {
	return s.filter(IsModifier)
}

// Elements returns the element keys of s in order.
func (s Selection) Elements() []string {
	return s.filter(IsElement)
}

func (s Selection) filter(keep func(string) bool) []string {
	out := make([]string, 0, len(s))
	for _, k := range s {
		if keep(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Selection) memoKey() string {
	return strings.Join(s, memoSeparator)
}
