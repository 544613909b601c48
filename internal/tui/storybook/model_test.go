package storybook

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/ui/terminal"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(components.Builtin(displayname.Config{ShowPrefix: true}), terminal.DefaultTheme())
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnFirstEntryWithDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	entry, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Button", entry.Name)
	assert.Equal(t, "primary", m.Selection()["variant"])

	cls, err := m.Classes()
	require.NoError(t, err)
	assert.Equal(t, components.ButtonSpec.MustResolve(nil), cls)
}

func TestNavigationWrapsAround(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyUp)
	entry, _ := m.Selected()
	assert.Equal(t, "Divider", entry.Name)

	m = press(t, m, keyDown, keyDown)
	entry, _ = m.Selected()
	assert.Equal(t, "IconButton", entry.Name)
}

func TestCycleAxisValues(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyTab, keyRight)
	assert.Equal(t, "secondary", m.Selection()["variant"])

	m = press(t, m, keyLeft, keyLeft)
	assert.Equal(t, "danger", m.Selection()["variant"])

	m = press(t, m, keyDown, keyRight)
	assert.Equal(t, "lg", m.Selection()["size"])

	cls, err := m.Classes()
	require.NoError(t, err)
	assert.Equal(t, components.ButtonSpec.MustResolve(variant.Selection{"variant": "danger", "size": "lg"}), cls)

	m = press(t, m, runes("r"))
	assert.Equal(t, "primary", m.Selection()["variant"])
	assert.Equal(t, "md", m.Selection()["size"])
}

func TestSelectionsArePerComponent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyTab, keyRight, keyTab, keyDown)
	entry, _ := m.Selected()
	assert.Equal(t, "IconButton", entry.Name)

	m = press(t, m, keyUp)
	assert.Equal(t, "secondary", m.Selection()["variant"])
}

func TestToggleUncontrolledAndControlled(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.False(t, m.Checked())

	m = press(t, m, keySpace)
	assert.True(t, m.Checked())
	assert.Equal(t, "onChange(true)", m.lastChange)

	// Controlled: the parent starts from the visible value and follows onChange.
	m = press(t, m, runes("c"))
	require.True(t, m.Controlled())
	assert.True(t, m.Checked())
	m = press(t, m, keySpace, keySpace, keySpace)
	assert.False(t, m.Checked())
	assert.Equal(t, "onChange(false)", m.lastChange)

	// Leaving controlled mode shows the untouched internal value.
	m = press(t, m, runes("c"))
	assert.False(t, m.Controlled())
	assert.True(t, m.Checked())
}

func TestDisabledIgnoresToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, runes("d"), keySpace)
	assert.False(t, m.Checked())
	assert.Equal(t, "ignored: disabled", m.lastChange)
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).Quitting())
	assert.Empty(t, next.(Model).View())
}

func TestViewShowsClassesPreviewAndHTML(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = press(t, m, keyDown, keyDown, keyDown, keyDown, keyDown)
	entry, _ := m.Selected()
	require.Equal(t, "Switch", entry.Name)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	m = next.(Model)
	m = press(t, m, keySpace)

	view := m.View()
	assert.Contains(t, view, "Capsule • storybook")
	assert.Contains(t, view, "[Atom] Switch")
	assert.Contains(t, view, "checked=true")
	assert.Contains(t, view, "aria-checked")
	assert.Contains(t, view, "Enable notifications")
}
