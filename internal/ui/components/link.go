package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// LinkSpec is the Link variant table.
var LinkSpec = &variant.Spec{
	Name: "Link",
	Base: "inline-flex items-center gap-1 transition-colors " +
		"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2",
	Axes: []variant.Axis{
		{Name: "variant", Options: []variant.Option{
			{Value: "inline", Classes: "underline underline-offset-2 hover:underline-offset-4"},
			{Value: "standalone", Classes: "no-underline hover:underline underline-offset-2"},
		}},
		{Name: "colorScheme", Options: []variant.Option{
			{Value: "primary", Classes: "text-primary-600 hover:text-primary-700 focus-visible:ring-primary-500"},
			{Value: "accent", Classes: "text-accent-600 hover:text-accent-700 focus-visible:ring-accent-500"},
		}},
	},
	Defaults: map[string]string{"variant": "inline", "colorScheme": "primary"},
}

// Link is an anchor. External links open in a new tab without an opener
// reference and carry a trailing glyph.
type Link struct {
	BaseComponent
	href     string
	text     string
	external bool
}

// NewLink creates a link.
func NewLink(href, text string) *Link {
	return &Link{BaseComponent: newBaseComponent(LinkSpec), href: href, text: text}
}

// External marks the link as leaving the site.
func (l *Link) External(on bool) *Link {
	l.external = on
	return l
}

// WithVariant sets inline or standalone.
func (l *Link) WithVariant(v string) *Link {
	l.set("variant", v)
	return l
}

// WithColorScheme sets primary or accent.
func (l *Link) WithColorScheme(scheme ColorScheme) *Link {
	l.set("colorScheme", string(scheme))
	return l
}

// WithClass appends caller classes.
func (l *Link) WithClass(class string) *Link {
	l.class = class
	return l
}

// WithAttr sets an extra HTML attribute.
func (l *Link) WithAttr(name, value string) *Link {
	l.attrs[name] = value
	return l
}

// Select applies axis values from a generic selection.
func (l *Link) Select(sel variant.Selection) *Link {
	l.selectAll(sel)
	return l
}

// Classes returns the resolved class string.
func (l *Link) Classes() (string, error) {
	return l.resolve()
}

// Render returns the anchor element.
func (l *Link) Render() (markup.Node, error) {
	cls, err := l.Classes()
	if err != nil {
		return nil, err
	}

	el := markup.El("a", markup.Attrs{"href": l.href, "class": cls}, markup.Text(l.text))
	if l.external {
		el.Set("target", "_blank").Set("rel", "noopener noreferrer")
		el.Append(markup.El("svg", markup.Attrs{
			"class":        "w-3.5 h-3.5 inline-block",
			"xmlns":        "http://www.w3.org/2000/svg",
			"viewBox":      "0 0 24 24",
			"fill":         "none",
			"stroke":       "currentColor",
			"stroke-width": "2",
			"aria-hidden":  "true",
		},
			markup.El("path", markup.Attrs{"d": "M15 3h6v6"}),
			markup.El("path", markup.Attrs{"d": "M10 14 21 3"}),
			markup.El("path", markup.Attrs{"d": "M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"}),
		))
	}
	return l.decorate(el), nil
}
