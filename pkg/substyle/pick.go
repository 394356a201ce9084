package substyle

import "slices"

// DefaultObjectProps lists object-valued properties that are kept as direct
// declarations. CSS-in-JS back-ends take keyframes objects as the value of
// animationName.
var DefaultObjectProps = []string{"animationName"}

// PickDirect returns the declarations of tree that apply to the current
// node: scalar values, pseudo-selector and at-rule blocks, and the nested
// values of allowlisted properties. Element and modifier subtrees are
// dropped.
func PickDirect(tree Tree, allowlist []string) Tree {
	out := Tree{}
	for _, e := range tree {
		_, nested := AsTree(e.Value)
		if !nested || IsDirectKey(e.Key) || slices.Contains(allowlist, e.Key) {
			out = out.put(e.Key, e.Value)
		}
	}
	return out
}

// PickNested returns the entries of tree requested by keys, in the order
// they are declared in tree. A tree key matches a requested key literally
// or after camelizing both, so "special-toggle" finds "specialToggle".
// Matches are stored under the requested key; two tree keys matching the
// same requested key are deep-merged.
func PickNested(tree Tree, keys []string) Tree {
	return pickNested(tree, newKeyMatcher(keys))
}

func pickNested(tree Tree, m keyMatcher) Tree {
	out := Tree{}
	for _, e := range tree {
		want, ok := m.match(e.Key)
		if !ok {
			continue
		}
		value := e.Value
		if prev, exists := out.Get(want); exists {
			prevTree, prevOK := AsTree(prev)
			curTree, curOK := AsTree(value)
			if prevOK && curOK {
				value = Merge(prevTree, curTree)
			}
		}
		out = out.put(want, value)
	}
	return out
}

// omit returns tree without the keys matched by m.
func omit(tree Tree, m keyMatcher) Tree {
	out := make(Tree, 0, len(tree))
	for _, e := range tree {
		if _, ok := m.match(e.Key); !ok {
			out = append(out, e)
		}
	}
	return out
}
