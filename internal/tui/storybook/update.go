package storybook

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
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
	case key.Matches(msg, m.keys.Focus):
		if m.focus == paneComponents && m.axisCount() > 0 {
			m.focus = paneAxes
		} else {
			m.focus = paneComponents
		}
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Controlled):
		m.switchMode()
	case key.Matches(msg, m.keys.Disable):
		m.disabled = !m.disabled
	case key.Matches(msg, m.keys.Reset):
		if entry, ok := m.Selected(); ok {
			m.selections[entry.Name] = defaults(entry)
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if m.focus == paneAxes {
		m.axis = wrap(m.axis+delta, m.axisCount())
		return
	}
	m.cursor = wrap(m.cursor+delta, len(m.entries))
	m.axis = 0
}

// cycle steps the focused axis through its options. Axes without a
// default also pass through an unset state.
func (m *Model) cycle(delta int) {
	entry, ok := m.Selected()
	if !ok || len(entry.Spec.Axes) == 0 {
		return
	}
	axis := entry.Spec.Axes[m.axis]
	values := axis.Values()
	if entry.Spec.Defaults[axis.Name] == "" {
		values = append([]string{""}, values...)
	}

	current := m.selections[entry.Name][axis.Name]
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}

	next := make(variant.Selection, len(m.selections[entry.Name])+1)
	for k, v := range m.selections[entry.Name] {
		next[k] = v
	}
	if value := values[wrap(idx+delta, len(values))]; value == "" {
		delete(next, axis.Name)
	} else {
		next[axis.Name] = value
	}
	m.selections[entry.Name] = next
}

func (m *Model) toggle() {
	if m.disabled {
		m.lastChange = "ignored: disabled"
		return
	}
	m.checked.Sync(m.controlledValue())
	m.checked.Toggle(func(next bool) {
		m.lastChange = fmt.Sprintf("onChange(%t)", next)
		if m.controlled {
			m.parent = next
		}
	})
}

// switchMode hands the value to or from the parent. Entering controlled
// mode seeds the parent with what is on screen; leaving it reveals the
// internal value, which controlled toggles never touch.
func (m *Model) switchMode() {
	if !m.controlled {
		m.parent = m.checked.Current()
	}
	m.controlled = !m.controlled
	m.checked.Sync(m.controlledValue())
}

func (m Model) axisCount() int {
	entry, ok := m.Selected()
	if !ok {
		return 0
	}
	return len(entry.Spec.Axes)
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
