// Package storybook is an interactive terminal browser for registered
// components.
package storybook

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/capsule/internal/toggle"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/ui/terminal"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

type pane int

const (
	paneComponents pane = iota
	paneAxes
)

// Model is the storybook's Bubbletea state.
type Model struct {
	registry *components.Registry
	entries  []components.Entry
	theme    terminal.Theme
	keys     keyMap
	help     help.Model

	cursor     int
	axis       int
	focus      pane
	selections map[string]variant.Selection

	// checked drives the preview of toggle components. In controlled mode
	// the model plays the parent that owns the value.
	checked    *toggle.State
	controlled bool
	parent     bool
	lastChange string
	disabled   bool

	width    int
	height   int
	quitting bool
}

// NewModel builds a storybook over every entry in r.
func NewModel(r *components.Registry, theme terminal.Theme) Model {
	m := Model{
		registry:   r,
		entries:    r.Entries(),
		theme:      theme.Normalize(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		selections: make(map[string]variant.Selection),
		checked:    toggle.New(toggle.Options{}),
		width:      100,
		height:     30,
	}
	for _, entry := range m.entries {
		m.selections[entry.Name] = defaults(entry)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (components.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return components.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Selection returns the current axis values of the selected entry.
func (m Model) Selection() variant.Selection {
	entry, ok := m.Selected()
	if !ok {
		return nil
	}
	return m.selections[entry.Name]
}

// Classes resolves the selected entry with the current selection.
func (m Model) Classes() (string, error) {
	entry, ok := m.Selected()
	if !ok {
		return "", nil
	}
	return entry.Classes(m.Selection(), "")
}

// Checked reports the value the preview renders with.
func (m Model) Checked() bool {
	m.checked.Sync(m.controlledValue())
	return m.checked.Current()
}

// Controlled reports whether the checked value is parent-owned.
func (m Model) Controlled() bool {
	return m.controlled
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) controlledValue() *bool {
	if !m.controlled {
		return nil
	}
	return toggle.Ptr(m.parent)
}

func (m Model) label() string {
	entry, ok := m.Selected()
	if !ok {
		return ""
	}
	for _, story := range entry.Stories {
		if story.Label != "" {
			return story.Label
		}
	}
	return entry.Name
}

func defaults(entry components.Entry) variant.Selection {
	sel, err := entry.Spec.Effective(nil)
	if err != nil {
		return variant.Selection{}
	}
	return sel
}
