// Package terminal approximates resolved class strings with lipgloss styles
// so components can be previewed without a browser.
package terminal

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/capsule/internal/tokens"
)

// BorderVariant enumerates the border shapes a preview can draw.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Theme is an immutable preview theme. Create one and reuse it.
type Theme struct {
	Tokens  *tokens.Tokens
	Borders BorderSet
}

// DefaultTheme returns a theme over the built-in tokens.
func DefaultTheme() Theme {
	return NewTheme(tokens.Default())
}

// NewTheme returns a theme over t.
func NewTheme(t *tokens.Tokens) Theme {
	return Theme{Tokens: t}.Normalize()
}

// Normalize fills in whatever a partially specified theme leaves out.
func (t Theme) Normalize() Theme {
	if t.Tokens == nil {
		t.Tokens = tokens.Default()
	}
	if t.Borders == (BorderSet{}) {
		t.Borders = BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		}
	}
	return t
}

// Color resolves a colour token to a lipgloss colour.
func (t Theme) Color(token string) (lipgloss.Color, bool) {
	hex, ok := t.Tokens.Color(token)
	if !ok || hex == "" {
		return "", false
	}
	return lipgloss.Color(hex), true
}

// BorderForVariant returns the border for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// Cells converts a spacing step ("4", "0.5", "px") into terminal cells.
// A cell is taken to be half a rem wide; rows are two rem tall.
func (t Theme) Cells(step string, vertical bool) (int, bool) {
	raw, ok := t.Tokens.Spacing[step]
	if !ok {
		return 0, false
	}
	rem, ok := parseRem(raw)
	if !ok {
		return 0, false
	}
	if vertical {
		return int(math.Floor(rem/2 + 0.5)), true
	}
	cells := int(math.Floor(rem*2 + 0.5))
	if cells == 0 && rem > 0 {
		cells = 1
	}
	return cells, true
}

func parseRem(value string) (float64, bool) {
	switch {
	case value == "0":
		return 0, true
	case strings.HasSuffix(value, "rem"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "rem"), 64)
		return f, err == nil
	case strings.HasSuffix(value, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
		return f / 16, err == nil
	}
	return 0, false
}
