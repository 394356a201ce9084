package substyle

import "sync"

// Binding ties a component to the Resolver built from its latest props. The
// Resolver is only rebuilt when style, className or classNames change, so
// selections stay memoized across renders.
type Binding struct {
	decorator Decorator

	mu       sync.Mutex
	last     Props
	resolver *Resolver
}

// NewBinding returns a Binding whose resolvers use decorator.
func NewBinding(decorator Decorator) *Binding {
	return &Binding{decorator: decorator}
}

// Resolve returns the Resolver for props, reusing the previous one when the
// props are unchanged. Trees are compared by identity.
func (b *Binding) Resolve(props Props) *Resolver {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.resolver != nil && sameProps(b.last, props) {
		return b.resolver
	}
	b.last = props
	b.resolver = Create(props, b.decorator)
	return b.resolver
}

// Use resolves props and selects modifiers on top of defaultStyle.
func (b *Binding) Use(props Props, modifiers any, defaultStyle any) (*Resolver, error) {
	return b.Resolve(props).SelectWithDefault(modifiers, defaultStyle)
}

func sameProps(a, b Props) bool {
	return a.ClassName == b.ClassName &&
		identityOf([]ClassMapping(a.ClassNames)) == identityOf([]ClassMapping(b.ClassNames)) &&
		sameStyle(a.Style, b.Style)
}

func sameStyle(a, b Style) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Tree:
		y, ok := b.(Tree)
		return ok && identityOf([]Entry(x)) == identityOf([]Entry(y))
	case *Tree:
		y, ok := b.(*Tree)
		return ok && x == y
	case *Resolver:
		y, ok := b.(*Resolver)
		return ok && x == y
	default:
		return false
	}
}
