package substyle

import (
	"regexp"
	"slices"
	"strings"
)

// ModifierSigil prefixes every modifier key.
const ModifierSigil = '&'

var camelPattern = regexp.MustCompile(`-(\w)`)

// IsModifier reports whether key names a modifier, e.g. "&active".
func IsModifier(key string) bool {
	return len(key) > 0 && key[0] == ModifierSigil
}

// IsElement reports whether key is not a modifier key. Pseudo-selector and
// at-rule keys pass this test too; IsDirectKey tells them apart.
func IsElement(key string) bool {
	return !IsModifier(key)
}

// IsDirectKey reports whether key holds a pseudo-selector (":hover") or an
// at-rule ("@media ...") block. Such blocks apply to the current node.
func IsDirectKey(key string) bool {
	return strings.HasPrefix(key, ":") || strings.HasPrefix(key, "@")
}

// Camelize converts kebab-case to camelCase: "special-toggle" becomes
// "specialToggle".
func Camelize(key string) string {
	return camelPattern.ReplaceAllStringFunc(key, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// keyMatcher matches tree keys against requested keys, literally or after
// camelizing both sides.
type keyMatcher struct {
	keys  []string
	camel []string
}

func newKeyMatcher(keys []string) keyMatcher {
	camel := make([]string, len(keys))
	for i, k := range keys {
		camel[i] = Camelize(k)
	}
	return keyMatcher{keys: keys, camel: camel}
}

// match returns the requested key matching key.
func (m keyMatcher) match(key string) (string, bool) {
	if len(m.keys) == 0 {
		return "", false
	}
	if i := slices.Index(m.keys, key); i >= 0 {
		return m.keys[i], true
	}
	if i := slices.Index(m.camel, Camelize(key)); i >= 0 {
		return m.keys[i], true
	}
	return "", false
}
