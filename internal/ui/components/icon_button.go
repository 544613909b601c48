package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

var iconButtonSchemes = []string{"primary", "accent", "error", "neutral"}

// IconButtonSpec is the IconButton variant table.
var IconButtonSpec = &variant.Spec{
	Name: "IconButton",
	Base: "inline-flex items-center justify-center font-medium transition-colors " +
		"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 " +
		"disabled:pointer-events-none disabled:opacity-50",
	Axes: []variant.Axis{
		{Name: "variant", Options: []variant.Option{
			{Value: "solid"},
			{Value: "outline", Classes: "border-2 bg-transparent"},
			{Value: "ghost", Classes: "bg-transparent"},
		}},
		{Name: "colorScheme", Options: emptyOptions(iconButtonSchemes...)},
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "h-8 w-8 text-sm"},
			{Value: "md", Classes: "h-10 w-10 text-base"},
			{Value: "lg", Classes: "h-12 w-12 text-lg"},
		}},
		variant.BoolAxis("isRound", "rounded-full", "rounded-md"),
	},
	Defaults: map[string]string{"variant": "solid", "colorScheme": "primary", "size": "md", "isRound": variant.False},
	Compounds: concatCompounds(
		schemeCompounds("solid", iconButtonSchemes, func(s string) string {
			return fmt.Sprintf("bg-%[1]s-500 text-white hover:bg-%[1]s-600 focus-visible:ring-%[1]s-500", s)
		}),
		schemeCompounds("outline", iconButtonSchemes, func(s string) string {
			return fmt.Sprintf("border-%[1]s-500 text-%[1]s-700 hover:bg-%[1]s-50 focus-visible:ring-%[1]s-500", s)
		}),
		schemeCompounds("ghost", iconButtonSchemes, func(s string) string {
			return fmt.Sprintf("text-%[1]s-500 hover:bg-%[1]s-50 focus-visible:ring-%[1]s-500", s)
		}),
	),
}

// IconButtonIconSpec sizes the icon inside an IconButton.
var IconButtonIconSpec = &variant.Spec{
	Name: "IconButtonIcon",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "w-4 h-4"},
			{Value: "md", Classes: "w-5 h-5"},
			{Value: "lg", Classes: "w-6 h-6"},
		}},
	},
	Defaults: map[string]string{"size": "md"},
}

// IconButton is an icon-only action. It always carries an accessible label.
type IconButton struct {
	BaseComponent
	icon     IconRenderer
	label    string
	disabled bool
}

// NewIconButton creates an icon button. ariaLabel names the action for
// assistive technology.
func NewIconButton(icon IconRenderer, ariaLabel string) *IconButton {
	return &IconButton{BaseComponent: newBaseComponent(IconButtonSpec), icon: icon, label: ariaLabel}
}

// WithVariant sets solid, outline or ghost.
func (b *IconButton) WithVariant(v string) *IconButton {
	b.set("variant", v)
	return b
}

// WithColorScheme sets the colour scheme.
func (b *IconButton) WithColorScheme(scheme string) *IconButton {
	b.set("colorScheme", scheme)
	return b
}

// WithSize sets sm, md or lg.
func (b *IconButton) WithSize(size string) *IconButton {
	b.set("size", size)
	return b
}

// Round switches between a circular and a rounded-square button.
func (b *IconButton) Round(on bool) *IconButton {
	b.set("isRound", variant.Bool(on))
	return b
}

// Disabled disables the button.
func (b *IconButton) Disabled(on bool) *IconButton {
	b.disabled = on
	return b
}

// WithClass appends caller classes.
func (b *IconButton) WithClass(class string) *IconButton {
	b.class = class
	return b
}

// WithAttr sets an extra HTML attribute.
func (b *IconButton) WithAttr(name, value string) *IconButton {
	b.attrs[name] = value
	return b
}

// Select applies axis values from a generic selection.
func (b *IconButton) Select(sel variant.Selection) *IconButton {
	b.selectAll(sel)
	return b
}

// Classes returns the resolved class string.
func (b *IconButton) Classes() (string, error) {
	return b.resolve()
}

// IconClasses returns the size tokens handed to the icon renderer.
func (b *IconButton) IconClasses() (string, error) {
	return IconButtonIconSpec.Resolve(variant.Selection{"size": b.value("size")})
}

// Render returns the button element.
func (b *IconButton) Render() (markup.Node, error) {
	cls, err := b.Classes()
	if err != nil {
		return nil, err
	}
	iconCls, err := b.IconClasses()
	if err != nil {
		return nil, err
	}

	el := markup.El("button", markup.Attrs{"class": cls, "type": "button", "aria-label": b.label})
	el.SetIf(b.disabled, "disabled", "")
	if b.icon != nil {
		el.Append(b.icon(iconCls))
	}
	return b.decorate(el), nil
}

func concatCompounds(groups ...[]variant.Compound) []variant.Compound {
	var out []variant.Compound
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
