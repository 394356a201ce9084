package substyle

// HoistModifiers pulls the declarations of every selected modifier up into
// the enclosing level.
//
// Modifiers nested inside modifiers are processed too, whether their parent
// is selected or not: a selected chain bubbles all the way up, while an
// unselected modifier keeps its place with its own nested modifiers already
// processed. Element, pseudo-selector and at-rule subtrees are left alone
// until they are selected themselves.
//
// More deeply nested declarations win over shallower ones. Precedence
// between modifiers on the same level follows their order in tree, not the
// order of selected.
func HoistModifiers(tree Tree, selected []string) Tree {
	return hoist(tree, newKeyMatcher(selected))
}

func hoist(tree Tree, m keyMatcher) Tree {
	sources := append([]Tree{omit(tree, m)}, pickNested(tree, m).subtrees()...)
	result := Merge(sources...)

	for _, key := range result.Keys() {
		if !IsModifier(key) {
			continue
		}
		value, _ := result.Get(key)
		_, selected := m.match(key)
		sub, ok := AsTree(value)
		if !ok {
			if selected {
				result = result.Without(key)
			}
			continue
		}
		hoisted := hoist(sub, m)
		if selected {
			result = mergeDeep(result.Without(key), hoisted)
		} else {
			result = result.put(key, hoisted)
		}
	}
	return result
}
