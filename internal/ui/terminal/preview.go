package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/capsule/internal/classes"
)

// Style translates a class string into a lipgloss style.
func (t Theme) Style(classString string) lipgloss.Style {
	return FromClasses(classString).Apply(lipgloss.NewStyle(), t)
}

// Preview renders label styled by classString.
func (t Theme) Preview(classString, label string) string {
	if label == "" {
		label = " "
	}
	return t.Style(classString).Render(label)
}

// Swatch renders a block filled with a colour token, for token tables.
func (t Theme) Swatch(token string) string {
	return Background(token)(lipgloss.NewStyle(), t).Render("    ")
}

// Preview renders label with the default theme.
func Preview(classString, label string) string {
	return DefaultTheme().Preview(classString, label)
}

// WithState promotes tokens guarded only by the given state modifiers
// (aria-checked, disabled) to unconditional ones, so a preview can show
// that state. Other modified tokens are left as they are.
func WithState(classString string, states ...string) string {
	if len(states) == 0 {
		return classString
	}
	active := make(map[string]bool, len(states))
	for _, s := range states {
		active[s] = true
	}

	fields := strings.Fields(classString)
	promoted := make([]string, 0, len(fields))
	for _, raw := range fields {
		u := classes.Describe(raw)
		if len(u.Modifiers) == 0 || !allActive(u.Modifiers, active) {
			continue
		}
		cut := 0
		for _, m := range u.Modifiers {
			cut += len(m) + 1
		}
		promoted = append(promoted, raw[cut:])
	}
	return classes.Merge(classString + " " + strings.Join(promoted, " "))
}

func allActive(modifiers []string, active map[string]bool) bool {
	for _, m := range modifiers {
		if !active[m] {
			return false
		}
	}
	return true
}
