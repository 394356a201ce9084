package substyle

// Merge deep-merges trees from left to right into a new tree. Later trees
// win on conflicting keys; nested trees are merged recursively instead of
// being replaced. A nested tree merged onto a scalar replaces the scalar.
// None of the inputs is modified.
func Merge(trees ...Tree) Tree {
	out := Tree{}
	for _, t := range trees {
		out = mergeDeep(out, t)
	}
	return out
}

func mergeDeep(target, source Tree) Tree {
	out := target.clone()
	for _, e := range source {
		src, isTree := AsTree(e.Value)
		if !isTree {
			out = out.put(e.Key, e.Value)
			continue
		}
		if prev, exists := out.Get(e.Key); exists {
			if dst, ok := AsTree(prev); ok {
				out = out.put(e.Key, mergeDeep(dst, src))
				continue
			}
		}
		out = out.put(e.Key, src)
	}
	return out
}
