package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/classes"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// IconRenderer returns icon markup sized with the given class tokens.
// Components that host icons resolve the size token and call the renderer;
// they never rewrite the returned node.
type IconRenderer func(sizeClasses string) markup.Node

// BaseComponent carries what every component shares: its variant table,
// the current selection and the caller's overrides.
// Embed this in component structs.
type BaseComponent struct {
	spec  *variant.Spec
	sel   variant.Selection
	class string
	id    string
	attrs markup.Attrs
}

func newBaseComponent(spec *variant.Spec) BaseComponent {
	return BaseComponent{spec: spec, sel: variant.Selection{}, attrs: markup.Attrs{}}
}

// Spec returns the component's variant table.
func (b *BaseComponent) Spec() *variant.Spec {
	return b.spec
}

// Selection returns a copy of the explicitly selected axis values.
func (b *BaseComponent) Selection() variant.Selection {
	out := make(variant.Selection, len(b.sel))
	for k, v := range b.sel {
		out[k] = v
	}
	return out
}

func (b *BaseComponent) set(axis, value string) {
	if value == "" {
		delete(b.sel, axis)
		return
	}
	b.sel[axis] = value
}

func (b *BaseComponent) selectAll(sel variant.Selection) {
	for axis, value := range sel {
		b.set(axis, value)
	}
}

// value returns the effective value of axis, falling back to the default.
func (b *BaseComponent) value(axis string) string {
	if v := b.sel[axis]; v != "" {
		return v
	}
	return b.spec.Defaults[axis]
}

// resolve resolves the selection with extra classes emitted before the
// caller's override.
func (b *BaseComponent) resolve(extra ...string) (string, error) {
	return b.spec.Resolve(b.sel, classes.Join(extra, b.class))
}

// decorate copies id and caller attributes onto el. Caller attributes win
// over component-set ones, except class.
func (b *BaseComponent) decorate(el *markup.Element) *markup.Element {
	el.SetIf(b.id != "", "id", b.id)
	for k, v := range b.attrs {
		if k == "class" {
			continue
		}
		el.Set(k, v)
	}
	return el
}

// spinnerIcon is the animated loading glyph shared by Button and Spinner.
func spinnerIcon(cls string) *markup.Element {
	return markup.El("svg", markup.Attrs{
		"class":       cls,
		"xmlns":       "http://www.w3.org/2000/svg",
		"fill":        "none",
		"viewBox":     "0 0 24 24",
		"aria-hidden": "true",
	},
		markup.El("circle", markup.Attrs{
			"class": "opacity-25", "cx": "12", "cy": "12", "r": "10",
			"stroke": "currentColor", "stroke-width": "4",
		}),
		markup.El("path", markup.Attrs{
			"class": "opacity-75",
			"fill":  "currentColor",
			"d":     "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z",
		}),
	)
}

// closeIcon is the X glyph used by removable badges and tags.
func closeIcon(cls string) *markup.Element {
	return markup.El("svg", markup.Attrs{
		"class":        cls,
		"xmlns":        "http://www.w3.org/2000/svg",
		"viewBox":      "0 0 24 24",
		"fill":         "none",
		"stroke":       "currentColor",
		"stroke-width": "2",
		"aria-hidden":  "true",
	},
		markup.El("path", markup.Attrs{"d": "M18 6 6 18"}),
		markup.El("path", markup.Attrs{"d": "m6 6 12 12"}),
	)
}

// schemeCompounds builds one compound rule per colour scheme for a variant.
// format receives the scheme name as its only argument.
func schemeCompounds(variantName string, schemes []string, format func(scheme string) string) []variant.Compound {
	out := make([]variant.Compound, len(schemes))
	for i, scheme := range schemes {
		out[i] = variant.Compound{
			Match:   map[string]string{"variant": variantName, "colorScheme": scheme},
			Classes: format(scheme),
		}
	}
	return out
}

func emptyOptions(values ...string) []variant.Option {
	opts := make([]variant.Option, len(values))
	for i, v := range values {
		opts[i] = variant.Option{Value: v}
	}
	return opts
}
