package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// DividerSpec is the Divider rule variant table.
var DividerSpec = &variant.Spec{
	Name: "Divider",
	Base: "border-neutral-300",
	Axes: []variant.Axis{
		{Name: "orientation", Options: []variant.Option{
			{Value: "horizontal", Classes: "w-full border-t"},
			{Value: "vertical", Classes: "h-full border-l"},
		}},
		{Name: "variant", Options: []variant.Option{
			{Value: "solid", Classes: "border-solid"},
			{Value: "dashed", Classes: "border-dashed"},
		}},
	},
	Defaults: map[string]string{"orientation": "horizontal", "variant": "solid"},
}

// DividerContainerSpec lays out a labelled divider.
var DividerContainerSpec = &variant.Spec{
	Name: "DividerContainer",
	Base: "flex items-center",
	Axes: []variant.Axis{
		{Name: "orientation", Options: []variant.Option{
			{Value: "horizontal", Classes: "w-full"},
			{Value: "vertical", Classes: "h-full flex-col"},
		}},
	},
	Defaults: map[string]string{"orientation": "horizontal"},
}

// Divider is a horizontal or vertical rule with an optional centred label.
type Divider struct {
	BaseComponent
	label string
}

// NewDivider creates a horizontal solid divider.
func NewDivider() *Divider {
	return &Divider{BaseComponent: newBaseComponent(DividerSpec)}
}

// Vertical switches the orientation.
func (d *Divider) Vertical(on bool) *Divider {
	if on {
		d.set("orientation", "vertical")
	} else {
		d.set("orientation", "horizontal")
	}
	return d
}

// WithVariant sets solid or dashed.
func (d *Divider) WithVariant(v string) *Divider {
	d.set("variant", v)
	return d
}

// WithLabel places text between two rules.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithClass appends caller classes.
func (d *Divider) WithClass(class string) *Divider {
	d.class = class
	return d
}

// Select applies axis values from a generic selection.
func (d *Divider) Select(sel variant.Selection) *Divider {
	d.selectAll(sel)
	return d
}

// Classes returns the resolved rule class string.
func (d *Divider) Classes() (string, error) {
	return d.resolve()
}

// Render returns an hr, or a separator container when labelled.
func (d *Divider) Render() (markup.Node, error) {
	if d.label == "" {
		cls, err := d.Classes()
		if err != nil {
			return nil, err
		}
		return d.decorate(markup.El("hr", markup.Attrs{"class": cls})), nil
	}

	// The caller's classes stay on the rules' container, not the rules.
	rule, err := d.spec.Resolve(d.sel, "flex-1")
	if err != nil {
		return nil, err
	}
	orientation := d.value("orientation")
	container, err := DividerContainerSpec.Resolve(variant.Selection{"orientation": orientation}, d.class)
	if err != nil {
		return nil, err
	}

	pad := "px-3"
	if orientation == "vertical" {
		pad = "py-3"
	}
	hr := func() *markup.Element {
		return markup.El("hr", markup.Attrs{"class": rule, "aria-hidden": "true"})
	}

	el := markup.El("div", markup.Attrs{
		"class":            container,
		"role":             "separator",
		"aria-orientation": orientation,
	},
		hr(),
		markup.El("span", markup.Attrs{"class": "text-sm text-neutral-500 font-medium select-none " + pad}, markup.Text(d.label)),
		hr(),
	)
	return d.decorate(el), nil
}
