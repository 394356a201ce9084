package substyle

import (
	"maps"
	"strings"
)

// Style is the style input of a Resolver: a Tree, a *Tree or a *Resolver
// whose props and selections are passed through.
type Style interface {
	isStyle()
}

// Props are the styling inputs of a component.
type Props struct {
	Style      Style
	ClassName  string
	ClassNames ClassNames
}

// Resolver holds the resolved props of one node and narrows down to its
// elements and modifiers. A Resolver is immutable apart from its cache of
// children and is safe for concurrent use.
type Resolver struct {
	props      StyleProps
	definition Tree
	base       string
	classNames ClassNames
	decorator  Decorator
	upstream   *Resolver
	memo       *memo
}

func (*Resolver) isStyle() {}

// Create builds a Resolver for props. A nil decorator means
// DefaultDecorator. The decorator is handed on to every child.
func Create(props Props, decorator Decorator) *Resolver {
	if decorator == nil {
		decorator = DefaultDecorator
	}

	base := props.ClassName
	if base == "" {
		base = guessBaseClassName(props.ClassNames)
	}

	r := &Resolver{
		base:       base,
		classNames: props.ClassNames,
		decorator:  decorator,
	}

	var spread StyleProps
	switch s := props.Style.(type) {
	case Tree:
		r.definition = s
		spread.Style = s
	case *Tree:
		if s != nil {
			r.definition = *s
			spread.Style = *s
		}
	case *Resolver:
		if s != nil {
			r.upstream = s
			r.definition = s.definition
			spread = s.Props()
		}
	}
	if r.upstream == nil {
		r.memo = newMemo()
	}

	names := append(strings.Fields(spread.ClassName), strings.Fields(base)...)
	if r.classNames != nil {
		names = mapClassNames(names, r.classNames)
	}
	if len(names) > 0 {
		spread.ClassName = strings.Join(names, " ")
	}

	r.props = decorator(spread).clone()
	return r
}

// Select returns the Resolver for the given elements and modifiers.
func (r *Resolver) Select(selector any) (*Resolver, error) {
	return r.SelectWithDefault(selector, nil)
}

// SelectWithDefault is Select with a default style that is merged below the
// Resolver's own style. The own style always wins, whatever modifiers are
// selected.
//
// Repeated calls with an equivalent selector and the same default style
// (compared by identity, not by value) return the same *Resolver.
func (r *Resolver) SelectWithDefault(selector any, defaultStyle any) (*Resolver, error) {
	if r.upstream != nil {
		return r.upstream.SelectWithDefault(selector, defaultStyle)
	}

	selection, ok := Coerce(selector)
	if !ok {
		return nil, &UsageError{Kind: ErrInvalidSelector, Value: selector}
	}
	def, id, ok := coerceDefaultStyle(defaultStyle)
	if !ok {
		return nil, &UsageError{Kind: ErrInvalidDefaultStyle, Value: defaultStyle}
	}

	key := memoKey{defaultStyle: id, selection: selection.memoKey()}
	return r.memo.load(key, func() *Resolver {
		return r.resolve(selection, def)
	}), nil
}

// MustSelect is like Select but panics on an invalid selector.
func (r *Resolver) MustSelect(selector any) *Resolver {
	child, err := r.Select(selector)
	if err != nil {
		panic(err)
	}
	return child
}

func (r *Resolver) resolve(selection Selection, defaultStyle Tree) *Resolver {
	modifiers := selection.Modifiers()
	elements := selection.Elements()

	collect := func(from Tree) []Tree {
		hoisted := HoistModifiers(from, modifiers)
		if len(elements) == 0 {
			return []Tree{hoisted}
		}
		return PickNested(hoisted, elements).subtrees()
	}

	child := Props{ClassNames: r.classNames}
	if r.definition != nil || defaultStyle != nil {
		child.Style = Merge(append(collect(defaultStyle), collect(r.definition)...)...)
	}
	if derived := deriveClassNames(r.base, elements, modifiers); len(derived) > 0 {
		child.ClassName = strings.Join(derived, " ")
	}
	return Create(child, r.decorator)
}

// Style returns the direct style of the node, or nil when none is set.
func (r *Resolver) Style() Tree {
	return r.props.Style
}

// HasStyle reports whether a style is set.
func (r *Resolver) HasStyle() bool {
	return r.props.Style != nil
}

// ClassName returns the class name of the node, or "" when none is set.
func (r *Resolver) ClassName() string {
	return r.props.ClassName
}

// Attr returns an extra prop added by the decorator.
func (r *Resolver) Attr(key string) (any, bool) {
	v, ok := r.props.Attrs[key]
	return v, ok
}

// Props returns a copy of everything the Resolver spreads onto its node.
func (r *Resolver) Props() StyleProps {
	return r.props.clone()
}

// Definition returns the undecorated style tree of the current level,
// including nested elements and unselected modifiers.
func (r *Resolver) Definition() Tree {
	return r.definition
}

// Attrs returns a copy of the extra props added by the decorator.
func (r *Resolver) Attrs() map[string]any {
	return maps.Clone(r.props.Attrs)
}
