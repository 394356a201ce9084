// Package inspect renders style trees and resolvers for humans.
package inspect

import (
	"fmt"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/xlab/treeprint"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// Meta labels attached to non-element branches.
const (
	MetaModifier = "modifier"
	MetaDirect   = "direct"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Tree renders style as a tree rooted at name. Modifier branches and
// pseudo-selector or at-rule blocks carry a meta label.
func Tree(name string, style substyle.Tree) string {
	root := treeprint.NewWithRoot(name)
	addEntries(root, style)
	return root.String()
}

func addEntries(branch treeprint.Tree, style substyle.Tree) {
	for _, e := range style {
		sub, ok := substyle.AsTree(e.Value)
		if !ok {
			branch.AddNode(fmt.Sprintf("%s: %v", e.Key, e.Value))
			continue
		}
		var child treeprint.Tree
		switch {
		case substyle.IsModifier(e.Key):
			child = branch.AddMetaBranch(MetaModifier, e.Key)
		case substyle.IsDirectKey(e.Key):
			child = branch.AddMetaBranch(MetaDirect, e.Key)
		default:
			child = branch.AddBranch(e.Key)
		}
		addEntries(child, sub)
	}
}

// Resolver renders what r spreads onto its node: class name, direct style
// and decorator attributes.
func Resolver(name string, r *substyle.Resolver) string {
	return Props(name, r.Props())
}

// Props renders resolved props the way Resolver does.
func Props(name string, props substyle.StyleProps) string {
	root := treeprint.NewWithRoot(name)
	if props.ClassName != "" {
		root.AddNode("className: " + props.ClassName)
	}
	if props.Style != nil {
		addEntries(root.AddBranch("style"), props.Style)
	}
	if len(props.Attrs) > 0 {
		keys := make([]string, 0, len(props.Attrs))
		for k := range props.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		branch := root.AddBranch("attrs")
		for _, k := range keys {
			branch.AddNode(fmt.Sprintf("%s: %q", k, fmt.Sprint(props.Attrs[k])))
		}
	}
	return root.String()
}

// Dump returns a Go-syntax dump of v with sorted map keys and no pointer
// addresses, stable across runs.
func Dump(v any) string {
	return dumper.Sdump(v)
}
