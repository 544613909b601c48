package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// ColorScheme names a semantic colour family.
type ColorScheme string

const (
	SchemePrimary ColorScheme = "primary"
	SchemeAccent  ColorScheme = "accent"
	SchemeSuccess ColorScheme = "success"
	SchemeWarning ColorScheme = "warning"
	SchemeError   ColorScheme = "error"
	SchemeInfo    ColorScheme = "info"
	SchemeNeutral ColorScheme = "neutral"
)

// StatusSchemes lists the colour schemes Badge and Tag accept.
var StatusSchemes = []string{"primary", "accent", "success", "warning", "error", "info", "neutral"}

// BadgeVariant specifies the visual style of a badge or tag.
type BadgeVariant string

const (
	BadgeSolid   BadgeVariant = "solid"
	BadgeOutline BadgeVariant = "outline"
	BadgeSubtle  BadgeVariant = "subtle"
)

// labelSpec builds the table Badge and Tag share.
func labelSpec(name string) *variant.Spec {
	return &variant.Spec{
		Name: name,
		Base: "inline-flex items-center gap-1.5 rounded-md font-medium transition-colors " +
			"focus:outline-none focus:ring-2 focus:ring-offset-2",
		Axes: []variant.Axis{
			{Name: "variant", Options: []variant.Option{
				{Value: "solid"},
				{Value: "outline", Classes: "border-2 bg-transparent"},
				{Value: "subtle"},
			}},
			{Name: "colorScheme", Options: emptyOptions(StatusSchemes...)},
			{Name: "size", Options: []variant.Option{
				{Value: "sm", Classes: "px-2 py-0.5 text-xs"},
				{Value: "md", Classes: "px-2.5 py-1 text-sm"},
				{Value: "lg", Classes: "px-3 py-1.5 text-base"},
			}},
		},
		Defaults: map[string]string{"variant": "solid", "colorScheme": "primary", "size": "md"},
		Compounds: concatCompounds(
			schemeCompounds("solid", StatusSchemes, func(s string) string {
				return fmt.Sprintf("bg-%[1]s-500 text-white focus:ring-%[1]s-500", s)
			}),
			schemeCompounds("outline", StatusSchemes, func(s string) string {
				return fmt.Sprintf("border-%[1]s-500 text-%[1]s-700 focus:ring-%[1]s-500", s)
			}),
			schemeCompounds("subtle", StatusSchemes, func(s string) string {
				return fmt.Sprintf("bg-%[1]s-100 text-%[1]s-800 focus:ring-%[1]s-500", s)
			}),
		),
	}
}

// BadgeSpec is the Badge variant table.
var BadgeSpec = labelSpec("Badge")

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text      string
	dot       bool
	removable bool
}

// NewBadge creates a badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: newBaseComponent(BadgeSpec), text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(v BadgeVariant) *Badge {
	b.set("variant", string(v))
	return b
}

// WithColorScheme sets the badge colour.
func (b *Badge) WithColorScheme(scheme ColorScheme) *Badge {
	b.set("colorScheme", string(scheme))
	return b
}

// WithSize sets sm, md or lg.
func (b *Badge) WithSize(size string) *Badge {
	b.set("size", size)
	return b
}

// WithDot shows a dot before the text.
func (b *Badge) WithDot(on bool) *Badge {
	b.dot = on
	return b
}

// Removable appends a remove button.
func (b *Badge) Removable(on bool) *Badge {
	b.removable = on
	return b
}

// WithClass appends caller classes.
func (b *Badge) WithClass(class string) *Badge {
	b.class = class
	return b
}

// WithAttr sets an extra HTML attribute.
func (b *Badge) WithAttr(name, value string) *Badge {
	b.attrs[name] = value
	return b
}

// Select applies axis values from a generic selection.
func (b *Badge) Select(sel variant.Selection) *Badge {
	b.selectAll(sel)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Classes returns the resolved class string.
func (b *Badge) Classes() (string, error) {
	return b.resolve()
}

// Render returns the badge element.
func (b *Badge) Render() (markup.Node, error) {
	cls, err := b.Classes()
	if err != nil {
		return nil, err
	}

	el := markup.El("span", markup.Attrs{"class": cls})
	if b.dot {
		el.Append(markup.El("span", markup.Attrs{"class": "w-1.5 h-1.5 rounded-full bg-current"}))
	}
	el.Append(markup.Text(b.text))
	if b.removable {
		el.Append(markup.El("button", markup.Attrs{
			"type":       "button",
			"class":      "ml-1 hover:opacity-70 focus:outline-none focus:opacity-70 transition-opacity",
			"aria-label": "Remove badge",
		}, closeIcon("w-3 h-3")))
	}
	return b.decorate(el), nil
}
