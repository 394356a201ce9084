// Package atomic turns resolved styles into generated CSS classes.
//
// A Sheet collects one rule per distinct direct style. Its decorators plug
// into substyle.Create so that nodes carry generated class names or data
// attributes instead of inline styles.
package atomic

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/davecgh/go-spew/spew"
)

// DefaultPrefix prefixes generated class names and data attributes.
const DefaultPrefix = "css"

// hashLength is the number of hex digits kept from a style digest.
const hashLength = 8

var dumper = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Rule is a single generated rule.
type Rule struct {
	// Selector is the CSS selector the rule applies to, e.g. ".css-1a2b3c4d".
	Selector string
	// Style holds direct declarations with pseudo keys in nested form
	// ("&:hover").
	Style substyle.Tree
}

// Sheet is a registry of generated rules, safe for concurrent use.
// Newer rules are inserted in front of older ones.
type Sheet struct {
	prefix string

	mu    sync.RWMutex
	rules []Rule
	index map[string]struct{}
}

// NewSheet returns an empty sheet. An empty prefix means DefaultPrefix.
func NewSheet(prefix string) *Sheet {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Sheet{
		prefix: prefix,
		index:  make(map[string]struct{}),
	}
}

// Prefix returns the prefix of generated names.
func (s *Sheet) Prefix() string {
	return s.prefix
}

// Hash returns a short digest of style. Styles declaring the same entries
// in the same order share a digest.
func Hash(style substyle.Tree) string {
	data, err := json.Marshal(style)
	if err != nil {
		// opaque values that cannot be encoded still get a stable name
		data = []byte(dumper.Sdump(style))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:hashLength]
}

// add registers style under selector unless a rule already exists.
func (s *Sheet) add(selector string, style substyle.Tree) {
	s.mu.RLock()
	_, ok := s.index[selector]
	s.mu.RUnlock()
	if ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[selector]; ok {
		return
	}
	s.index[selector] = struct{}{}
	s.rules = append([]Rule{{Selector: selector, Style: MapPseudoSelectors(style)}}, s.rules...)
}

// AddClass registers style as a class rule and returns the class name.
func (s *Sheet) AddClass(style substyle.Tree) string {
	class := s.prefix + "-" + Hash(style)
	s.add("."+class, style)
	return class
}

// AddAttribute registers style as a data-attribute rule and returns the
// attribute name.
func (s *Sheet) AddAttribute(style substyle.Tree) string {
	attr := "data-" + s.prefix + "-" + Hash(style)
	s.add("["+attr+"]", style)
	return attr
}

// Rules returns a snapshot of the registered rules, newest first.
func (s *Sheet) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Rule(nil), s.rules...)
}

// Len returns the number of registered rules.
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// Reset removes all rules.
func (s *Sheet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = nil
	s.index = make(map[string]struct{})
}

// Create returns a root Resolver for style whose props are decorated by
// s.Decorator.
func (s *Sheet) Create(style substyle.Tree) *substyle.Resolver {
	return substyle.Create(substyle.Props{Style: style}, s.Decorator())
}
