package storybook

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/capsule/internal/toggle"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/ui/terminal"
)

const listWidth = 28

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("Capsule • storybook")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewList(), m.viewDetail())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.help.View(m.keys))
}

func (m Model) viewList() string {
	lines := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		name := m.registry.DisplayName(entry)
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("› "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}

	style := listStyle.Width(listWidth)
	if m.focus == paneComponents {
		style = style.BorderForeground(focusedBorder)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) viewDetail() string {
	entry, ok := m.Selected()
	if !ok {
		return detailStyle.Render(dimStyle.Render("no components registered"))
	}

	width := m.width - listWidth - 6
	if width < 20 {
		width = 20
	}

	sections := []string{valueStyle.Render(entry.Name), sectionStyle.Render("Axes"), m.viewAxes(entry)}

	cls, err := m.Classes()
	if err != nil {
		sections = append(sections, errorStyle.Render(err.Error()))
		return detailStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	checked := m.Checked()
	sections = append(sections,
		sectionStyle.Render("Classes"),
		classStyle.Width(width).Render(cls),
		sectionStyle.Render("Preview"),
		m.theme.Preview(terminal.WithState(cls, m.states(checked)...), m.label()),
		sectionStyle.Render("State"),
		m.viewState(checked),
	)

	html, err := m.registry.Render(entry.Name, components.RenderInput{
		Select:   m.Selection(),
		Label:    m.label(),
		Checked:  toggle.Ptr(checked),
		Disabled: m.disabled,
	})
	if err != nil {
		sections = append(sections, errorStyle.Render(err.Error()))
	} else {
		sections = append(sections, sectionStyle.Render("HTML"), dimStyle.Width(width).Render(html))
	}
	return detailStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewAxes(entry components.Entry) string {
	if len(entry.Spec.Axes) == 0 {
		return dimStyle.Render("(no axes)")
	}
	sel := m.Selection()
	nameWidth := 0
	for _, axis := range entry.Spec.Axes {
		if len(axis.Name) > nameWidth {
			nameWidth = len(axis.Name)
		}
	}

	lines := make([]string, 0, len(entry.Spec.Axes))
	for i, axis := range entry.Spec.Axes {
		value := sel[axis.Name]
		if value == "" {
			value = dimStyle.Render("(unset)")
		}
		prefix := "  "
		if m.focus == paneAxes && i == m.axis {
			prefix = cursorStyle.Render("› ")
			value = "‹ " + valueStyle.Render(value) + " ›"
		}
		lines = append(lines, prefix+fmt.Sprintf("%-*s  %s", nameWidth, axis.Name, value))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewState(checked bool) string {
	mode := "uncontrolled"
	if m.controlled {
		mode = "controlled"
	}
	parts := []string{fmt.Sprintf("checked=%t", checked), mode}
	if m.disabled {
		parts = append(parts, "disabled")
	}
	if m.lastChange != "" {
		parts = append(parts, "last: "+m.lastChange)
	}
	return strings.Join(parts, " · ")
}

// states lists the modifiers the preview treats as active.
func (m Model) states(checked bool) []string {
	var states []string
	if checked {
		states = append(states, "aria-checked", "checked")
	}
	if m.disabled {
		states = append(states, "disabled")
	}
	return states
}
