package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/avatar"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// AvatarSpec is the Avatar variant table.
var AvatarSpec = &variant.Spec{
	Name: "Avatar",
	Base: "inline-flex items-center justify-center overflow-hidden " +
		"bg-neutral-200 text-neutral-700 font-medium select-none",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "xs", Classes: "w-6 h-6 text-xs"},
			{Value: "sm", Classes: "w-8 h-8 text-sm"},
			{Value: "md", Classes: "w-10 h-10 text-base"},
			{Value: "lg", Classes: "w-12 h-12 text-lg"},
			{Value: "xl", Classes: "w-16 h-16 text-xl"},
			{Value: "2xl", Classes: "w-20 h-20 text-2xl"},
		}},
		{Name: "variant", Options: []variant.Option{
			{Value: "circle", Classes: "rounded-full"},
			{Value: "rounded", Classes: "rounded-lg"},
			{Value: "square", Classes: "rounded-none"},
		}},
	},
	Defaults: map[string]string{"size": "md", "variant": "circle"},
}

// Avatar shows a user image, or initials on a colour picked from the name.
type Avatar struct {
	BaseComponent
	name     string
	src      string
	alt      string
	fallback string
	palette  []string
}

// NewAvatar creates an avatar for name.
func NewAvatar(name string) *Avatar {
	return &Avatar{BaseComponent: newBaseComponent(AvatarSpec), name: name, palette: avatar.DefaultPalette}
}

// WithSize sets xs through 2xl.
func (a *Avatar) WithSize(size string) *Avatar {
	a.set("size", size)
	return a
}

// WithVariant sets circle, rounded or square.
func (a *Avatar) WithVariant(v string) *Avatar {
	a.set("variant", v)
	return a
}

// WithImage shows src instead of initials. alt defaults to the name.
func (a *Avatar) WithImage(src, alt string) *Avatar {
	a.src = src
	a.alt = alt
	return a
}

// WithFallbackColor overrides the hashed fallback colour classes.
func (a *Avatar) WithFallbackColor(classes string) *Avatar {
	a.fallback = classes
	return a
}

// WithPalette replaces the fallback palette. An empty palette is ignored.
func (a *Avatar) WithPalette(palette []string) *Avatar {
	if len(palette) > 0 {
		a.palette = palette
	}
	return a
}

// WithClass appends caller classes.
func (a *Avatar) WithClass(class string) *Avatar {
	a.class = class
	return a
}

// WithAttr sets an extra HTML attribute.
func (a *Avatar) WithAttr(name, value string) *Avatar {
	a.attrs[name] = value
	return a
}

// Select applies axis values from a generic selection.
func (a *Avatar) Select(sel variant.Selection) *Avatar {
	a.selectAll(sel)
	return a
}

// Initials returns the initials shown without an image.
func (a *Avatar) Initials() string {
	return avatar.Initials(a.name)
}

// FallbackColor returns the colour classes used without an image.
func (a *Avatar) FallbackColor() string {
	if a.fallback != "" {
		return a.fallback
	}
	return avatar.FallbackColor(a.name, a.palette)
}

// Classes returns the resolved class string.
func (a *Avatar) Classes() (string, error) {
	if a.src != "" {
		return a.resolve()
	}
	return a.resolve(a.FallbackColor())
}

// Render returns the avatar element.
func (a *Avatar) Render() (markup.Node, error) {
	cls, err := a.Classes()
	if err != nil {
		return nil, err
	}

	el := markup.El("span", markup.Attrs{"class": cls})
	if a.src != "" {
		alt := a.alt
		if alt == "" {
			alt = a.name
		}
		el.Append(markup.El("img", markup.Attrs{"src": a.src, "alt": alt, "class": "w-full h-full object-cover"}))
	} else {
		el.Append(markup.El("span", markup.Attrs{"aria-label": a.name}, markup.Text(a.Initials())))
	}
	return a.decorate(el), nil
}
