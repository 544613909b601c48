package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/capsule/internal/classes"
)

// StyleStrategy defines how styling is applied to a preview.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies one transformation to a lipgloss.Style using data from
// a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFuncs in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// Len reports how many style functions the strategy holds.
func (c CompositeStrategy) Len() int {
	return len(c.funcs)
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) CompositeStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Rule maps a described utility to a StyleFunc, or nil when the utility is
// not its concern.
type Rule func(u classes.Utility) StyleFunc

// DefaultRules is the translation applied by FromClasses.
var DefaultRules = []Rule{
	colourRule,
	paddingRule,
	borderRule,
	roundedRule,
	fontRule,
	decorationRule,
	opacityRule,
}

// FromClasses builds a strategy from a resolved class string. Rules run in
// order, each over the tokens in emission order, so a rounded corner always
// lands on whatever border the string declares. Tokens with variant
// modifiers (hover:, focus:, md:) describe other states and are skipped.
func FromClasses(classString string, rules ...Rule) CompositeStrategy {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	var utilities []classes.Utility
	for _, raw := range strings.Fields(classString) {
		if u := classes.Describe(raw); len(u.Modifiers) == 0 {
			utilities = append(utilities, u)
		}
	}

	var funcs []StyleFunc
	for _, rule := range rules {
		for _, u := range utilities {
			if fn := rule(u); fn != nil {
				funcs = append(funcs, fn)
			}
		}
	}
	return NewCompositeStrategy(funcs...)
}

// Background sets the background colour named by a colour token.
func Background(token string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := theme.Color(token); ok {
			return base.Background(c)
		}
		return base
	}
}

// Foreground sets the text colour named by a colour token.
func Foreground(token string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := theme.Color(token); ok {
			return base.Foreground(c)
		}
		return base
	}
}

// BorderColor sets the border colour named by a colour token.
func BorderColor(token string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := theme.Color(token); ok {
			return base.BorderForeground(c)
		}
		return base
	}
}

// Border draws a border on the given sides (top, right, bottom, left).
// With no sides it keeps the sides already set, or draws all four.
func Border(variant BorderVariant, sides ...bool) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		on := sides
		if len(on) == 0 {
			_, top, right, bottom, left := base.GetBorder()
			if !top && !right && !bottom && !left {
				top, right, bottom, left = true, true, true, true
			}
			on = []bool{top, right, bottom, left}
		}
		return base.Border(BorderForVariant(theme, variant), on...)
	}
}

// PaddingX pads left and right by a spacing step.
func PaddingX(step string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if cells, ok := theme.Cells(step, false); ok {
			return base.PaddingLeft(cells).PaddingRight(cells)
		}
		return base
	}
}

// PaddingY pads top and bottom by a spacing step.
func PaddingY(step string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if rows, ok := theme.Cells(step, true); ok {
			return base.PaddingTop(rows).PaddingBottom(rows)
		}
		return base
	}
}

// Bold renders text in bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Bold(true) }
}

// Underline renders text underlined.
func Underline() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) }
}

// Faint renders text dimmed.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) }
}

func colourRule(u classes.Utility) StyleFunc {
	// Translucent colours (bg-primary-500/10) have no terminal equivalent.
	if strings.Contains(u.Name, "/") {
		return nil
	}
	switch u.Family {
	case "bg-color":
		return Background(strings.TrimPrefix(u.Name, "bg-"))
	case "text-color":
		return Foreground(strings.TrimPrefix(u.Name, "text-"))
	case "border-color":
		return BorderColor(strings.TrimPrefix(u.Name, "border-"))
	}
	return nil
}

func paddingRule(u classes.Utility) StyleFunc {
	switch u.Family {
	case "px":
		return PaddingX(strings.TrimPrefix(u.Name, "px-"))
	case "py":
		return PaddingY(strings.TrimPrefix(u.Name, "py-"))
	case "p":
		step := strings.TrimPrefix(u.Name, "p-")
		return func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return PaddingY(step)(PaddingX(step)(base, theme), theme)
		}
	}
	return nil
}

func borderRule(u classes.Utility) StyleFunc {
	if !strings.HasPrefix(u.Family, "border-w") {
		return nil
	}
	width := "1"
	side := strings.TrimPrefix(u.Family, "border-w")
	rest := strings.TrimPrefix(u.Name, "border"+side)
	if rest != "" {
		width = strings.TrimPrefix(rest, "-")
	}
	if width == "0" {
		return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.UnsetBorderStyle() }
	}

	variant := BorderVariantNormal
	if width != "1" {
		variant = BorderVariantThick
	}
	switch side {
	case "-t":
		return Border(variant, true, false, false, false)
	case "-r", "-e":
		return Border(variant, false, true, false, false)
	case "-b":
		return Border(variant, false, false, true, false)
	case "-l", "-s":
		return Border(variant, false, false, false, true)
	case "-x":
		return Border(variant, false, true, false, true)
	case "-y":
		return Border(variant, true, false, true, false)
	}
	return Border(variant, true, true, true, true)
}

func roundedRule(u classes.Utility) StyleFunc {
	if !strings.HasPrefix(u.Name, "rounded") || u.Name == "rounded-none" {
		return nil
	}
	return Border(BorderVariantRounded)
}

func fontRule(u classes.Utility) StyleFunc {
	switch u.Name {
	case "font-medium", "font-semibold", "font-bold", "font-extrabold", "font-black":
		return Bold()
	}
	return nil
}

func decorationRule(u classes.Utility) StyleFunc {
	if u.Name == "underline" {
		return Underline()
	}
	return nil
}

func opacityRule(u classes.Utility) StyleFunc {
	if u.Family == "opacity" && u.Name != "opacity-100" {
		return Faint()
	}
	return nil
}
