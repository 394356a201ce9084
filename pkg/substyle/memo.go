package substyle

import "sync"

// identity tells slices apart by backing array and length, the way a
// reference comparison would. Keeping the pointer in a map key keeps the
// array alive, so its address cannot be reused while cached.
type identity[T any] struct {
	data    *T
	n       int
	present bool
}

func identityOf[T any](s []T) identity[T] {
	if s == nil {
		return identity[T]{}
	}
	id := identity[T]{n: len(s), present: true}
	if len(s) > 0 {
		id.data = &s[0]
	}
	return id
}

type memoKey struct {
	defaultStyle identity[Entry]
	selection    string
}

// memo caches the children of a single Resolver.
type memo struct {
	mu       sync.Mutex
	children map[memoKey]*Resolver
}

func newMemo() *memo {
	return &memo{children: make(map[memoKey]*Resolver)}
}

func (m *memo) load(key memoKey, build func() *Resolver) *Resolver {
	m.mu.Lock()
	defer m.mu.Unlock()

	if child, ok := m.children[key]; ok {
		return child
	}
	child := build()
	m.children[key] = child
	return child
}

// coerceDefaultStyle accepts nil, Tree and *Tree.
func coerceDefaultStyle(v any) (Tree, identity[Entry], bool) {
	switch t := v.(type) {
	case nil:
		return nil, identity[Entry]{}, true
	case Tree:
		return t, identityOf([]Entry(t)), true
	case *Tree:
		if t == nil {
			return nil, identity[Entry]{}, true
		}
		return *t, identityOf([]Entry(*t)), true
	default:
		return nil, identity[Entry]{}, false
	}
}
