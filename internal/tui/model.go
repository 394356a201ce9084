// Package tui implements an interactive explorer for stylesheet components:
// toggle modifiers, descend into elements and watch the resolved style.
package tui

import (
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/substyle/internal/logger"
	"github.com/alexisbeaulieu97/substyle/internal/render"
	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
	"github.com/alexisbeaulieu97/substyle/internal/tui/components"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// FileChangedMsg reports that the stylesheet changed on disk.
type FileChangedMsg struct{}

// ReloadedMsg carries the outcome of a reload.
type ReloadedMsg struct {
	Doc *stylesheet.Document
	Err error
}

// Options configures the explorer.
type Options struct {
	// Component is the name of the explored component.
	Component string
	// Reload reads the stylesheet again. Reloading is disabled when nil.
	Reload func() (*stylesheet.Document, error)
	// Changes triggers a reload on every value.
	Changes <-chan struct{}
	// Preview is the sample text rendered with the resolved style.
	Preview string
	Log     *logger.Logger
}

// level is one step of the path from the component root to the explored
// element.
type level struct {
	element   string
	modifiers []string
	cursor    int
}

// Model contains the Bubbletea state of the explorer.
type Model struct {
	opts Options
	comp *stylesheet.Component
	root *substyle.Resolver

	levels  []level
	items   components.ItemList
	current *substyle.Resolver
	err     error

	keys     KeyMap
	help     help.Model
	width    int
	quitting bool
}

// NewModel creates an explorer for the component opts.Component of doc. The
// component's own modifiers start selected.
func NewModel(doc *stylesheet.Document, opts Options) (Model, error) {
	if doc == nil {
		return Model{}, errors.New("no stylesheet")
	}
	comp, err := doc.Lookup(opts.Component)
	if err != nil {
		return Model{}, err
	}
	if opts.Preview == "" {
		opts.Preview = comp.Name
	}

	m := Model{
		opts:   opts,
		comp:   comp,
		root:   comp.Root(nil),
		levels: []level{{modifiers: slices.Clone(comp.Modifiers)}},
		keys:   DefaultKeyMap,
		help:   help.New(),
	}
	m.refresh()
	return m, nil
}

// Init starts listening for stylesheet changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.opts.Changes)
}

// Path returns the element keys from the component root to the current
// level.
func (m Model) Path() []string {
	path := make([]string, 0, len(m.levels)-1)
	for _, lv := range m.levels[1:] {
		path = append(path, lv.element)
	}
	return path
}

// Modifiers returns the modifiers selected on the current level.
func (m Model) Modifiers() []string {
	return slices.Clone(m.top().modifiers)
}

// Current returns the resolver of the current level, nil after an error.
func (m Model) Current() *substyle.Resolver {
	return m.current
}

// Err returns the last resolution or reload error.
func (m Model) Err() error {
	return m.err
}

func (m Model) top() *level {
	return &m.levels[len(m.levels)-1]
}

// refresh resolves every level again and lists the keys of the current one.
func (m *Model) refresh() {
	base, current, err := m.resolve()
	if err != nil {
		m.err = err
		m.current = nil
		m.items = components.ItemList{}
		return
	}
	m.err = nil
	m.current = current
	m.items = components.NewItemList(base.Definition(), m.top().modifiers)
	if top := m.top(); top.cursor >= m.items.Len() {
		top.cursor = max(0, m.items.Len()-1)
	}
}

// resolve returns, for the current level, the resolver before and after
// its modifiers are selected. The component default style is applied on
// the root level together with the root modifiers, so the caller style
// keeps precedence.
func (m *Model) resolve() (base, current *substyle.Resolver, err error) {
	var def any
	if m.comp.Default != nil {
		def = m.comp.Default
	}
	if base, err = m.root.SelectWithDefault(nil, def); err != nil {
		return nil, nil, err
	}
	if current, err = m.root.SelectWithDefault(m.levels[0].modifiers, def); err != nil {
		return nil, nil, err
	}
	for _, lv := range m.levels[1:] {
		if base, err = current.Select(lv.element); err != nil {
			return nil, nil, err
		}
		current = base
		if len(lv.modifiers) > 0 {
			if current, err = base.Select(lv.modifiers); err != nil {
				return nil, nil, err
			}
		}
	}
	return base, current, nil
}

// spec translates the resolved style for the preview.
func (m Model) spec() render.Spec {
	if m.current == nil {
		return render.Spec{}
	}
	return render.Translate(m.current.Style())
}
