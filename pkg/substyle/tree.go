package substyle

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Entry is a single key/value pair of a Tree.
type Entry struct {
	Key   string
	Value any
}

// Tree is an ordered style definition.
//
// Values are strings, booleans, numbers or nested Trees (a *Tree is read as
// its pointee). Any other value is opaque and copied verbatim. The order of
// entries decides merge precedence. Duplicate keys resolve to the last entry.
//
// A nil Tree means "no style"; an empty Tree{} is a style without
// declarations.
type Tree []Entry

func (Tree) isStyle() {}

// Get returns the value stored under key.
func (t Tree) Get(key string) (any, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Key == key {
			return t[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether key is defined.
func (t Tree) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Subtree returns the nested tree stored under key.
func (t Tree) Subtree(key string) (Tree, bool) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false
	}
	return AsTree(v)
}

// Keys returns the distinct keys of t in declaration order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	seen := make(map[string]struct{}, len(t))
	for _, e := range t {
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		keys = append(keys, e.Key)
	}
	return keys
}

// Set returns a copy of t with key bound to value. An existing key keeps
// its position.
func (t Tree) Set(key string, value any) Tree {
	return t.clone().put(key, value)
}

// Without returns a copy of t without the given keys.
func (t Tree) Without(keys ...string) Tree {
	out := make(Tree, 0, len(t))
	for _, e := range t {
		if !slices.Contains(keys, e.Key) {
			out = append(out, e)
		}
	}
	return out
}

// Map converts t into nested plain maps. Key order is lost.
func (t Tree) Map() map[string]any {
	if t == nil {
		return nil
	}
	out := make(map[string]any, len(t))
	for _, e := range t {
		if sub, ok := AsTree(e.Value); ok {
			out[e.Key] = sub.Map()
			continue
		}
		out[e.Key] = e.Value
	}
	return out
}

// MarshalJSON encodes t as a JSON object, keeping the key order.
func (t Tree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		value, _ := t.Get(key)
		if sub, ok := AsTree(value); ok {
			value = sub
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t Tree) clone() Tree {
	out := make(Tree, len(t), len(t)+1)
	copy(out, t)
	return out
}

// put binds key in place. t must be owned by the caller.
func (t Tree) put(key string, value any) Tree {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Key == key {
			t[i].Value = value
			return t
		}
	}
	return append(t, Entry{Key: key, Value: value})
}

// subtrees returns the nested trees of t in declaration order.
func (t Tree) subtrees() []Tree {
	out := make([]Tree, 0, len(t))
	for _, e := range t {
		if sub, ok := AsTree(e.Value); ok {
			out = append(out, sub)
		}
	}
	return out
}

// AsTree reports whether v is a nested tree and returns it.
func AsTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case *Tree:
		if t == nil {
			return nil, false
		}
		return *t, true
	default:
		return nil, false
	}
}
