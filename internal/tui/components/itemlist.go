package components

import (
	"strings"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// Item is a selectable key of a style level: a modifier or an element.
type Item struct {
	Key      string
	Modifier bool
	Selected bool
}

// ItemList renders the selectable keys of a style level.
type ItemList struct {
	items []Item
}

// NewItemList lists the modifier and element keys of definition in order.
// Scalars and pseudo-selector or at-rule blocks are skipped. Modifiers
// found in selected are marked.
func NewItemList(definition substyle.Tree, selected []string) ItemList {
	var items []Item
	for _, key := range definition.Keys() {
		value, _ := definition.Get(key)
		if _, nested := substyle.AsTree(value); !nested || substyle.IsDirectKey(key) {
			continue
		}
		item := Item{Key: key, Modifier: substyle.IsModifier(key)}
		if item.Modifier {
			for _, s := range selected {
				if s == key {
					item.Selected = true
					break
				}
			}
		}
		items = append(items, item)
	}
	return ItemList{items: items}
}

// Items returns a copy of the listed items.
func (l ItemList) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Len returns the number of items.
func (l ItemList) Len() int {
	return len(l.items)
}

// At returns the item at i.
func (l ItemList) At(i int) (Item, bool) {
	if i < 0 || i >= len(l.items) {
		return Item{}, false
	}
	return l.items[i], true
}

// View renders one line per item with cursor marking the current one.
func (l ItemList) View(cursor int) string {
	lines := make([]string, 0, len(l.items))
	for i, item := range l.items {
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+item.Label())
	}
	return strings.Join(lines, "\n")
}

// Label renders the item as "[x] &mod" or "▸ element".
func (i Item) Label() string {
	if !i.Modifier {
		return "▸ " + i.Key
	}
	if i.Selected {
		return "[x] " + i.Key
	}
	return "[ ] " + i.Key
}
