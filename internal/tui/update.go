package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FileChangedMsg:
		return m, tea.Batch(reloadCmd(m.opts.Reload), waitForChange(m.opts.Changes))

	case ReloadedMsg:
		m.applyReload(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggle()

	case key.Matches(msg, m.keys.Enter):
		item, ok := m.items.At(m.top().cursor)
		if !ok {
			break
		}
		if item.Modifier {
			m.toggle()
			break
		}
		m.levels = append(slices.Clip(m.levels), level{element: item.Key})
		m.refresh()

	case key.Matches(msg, m.keys.Back):
		if len(m.levels) > 1 {
			m.levels = slices.Clone(m.levels[:len(m.levels)-1])
			m.refresh()
		}

	case key.Matches(msg, m.keys.Reload):
		return m, reloadCmd(m.opts.Reload)
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.items.Len() == 0 {
		return
	}
	m.levels = slices.Clone(m.levels)
	top := m.top()
	top.cursor = min(max(top.cursor+delta, 0), m.items.Len()-1)
}

// toggle flips the modifier under the cursor.
func (m *Model) toggle() {
	item, ok := m.items.At(m.top().cursor)
	if !ok || !item.Modifier {
		return
	}
	m.levels = slices.Clone(m.levels)
	top := m.top()
	if i := slices.Index(top.modifiers, item.Key); i >= 0 {
		top.modifiers = slices.Delete(slices.Clone(top.modifiers), i, i+1)
	} else {
		top.modifiers = append(slices.Clone(top.modifiers), item.Key)
	}
	m.refresh()
}

func (m *Model) applyReload(msg ReloadedMsg) {
	if msg.Err != nil {
		m.opts.Log.Error(msg.Err, "reload failed")
		m.err = msg.Err
		return
	}
	comp, err := msg.Doc.Lookup(m.opts.Component)
	if err != nil {
		m.opts.Log.Error(err, "reload failed")
		m.err = err
		return
	}
	m.opts.Log.Info("stylesheet reloaded", "component", comp.Name)
	m.comp = comp
	m.root = comp.Root(nil)
	m.refresh()
}

// waitForChange turns the next value of changes into a FileChangedMsg.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return FileChangedMsg{}
	}
}

func reloadCmd(reload func() (*stylesheet.Document, error)) tea.Cmd {
	if reload == nil {
		return nil
	}
	return func() tea.Msg {
		doc, err := reload()
		return ReloadedMsg{Doc: doc, Err: err}
	}
}
