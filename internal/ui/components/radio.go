package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// RadioSpec is the Radio variant table.
var RadioSpec = &variant.Spec{
	Name: "Radio",
	Base: "appearance-none rounded-full border-2 transition-all cursor-pointer " +
		"focus:outline-none focus:ring-2 focus:ring-offset-2 " +
		"disabled:cursor-not-allowed disabled:opacity-50 " +
		"checked:border-transparent relative",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "w-4 h-4"},
			{Value: "md", Classes: "w-5 h-5"},
			{Value: "lg", Classes: "w-6 h-6"},
		}},
		{Name: "colorScheme", Options: []variant.Option{
			{Value: "primary", Classes: "border-neutral-300 checked:bg-primary-500 focus:ring-primary-500"},
			{Value: "accent", Classes: "border-neutral-300 checked:bg-accent-500 focus:ring-accent-500"},
		}},
	},
	Defaults: map[string]string{"size": "md", "colorScheme": "primary"},
}

var radioDotSizes = map[string]string{"sm": "w-1.5 h-1.5", "md": "w-2 h-2", "lg": "w-2.5 h-2.5"}

// Radio is one option of a radio group. Selection is owned by the group,
// so Radio has no toggle state of its own.
type Radio struct {
	BaseComponent
	name     string
	option   string
	label    string
	checked  bool
	disabled bool
}

// NewRadio creates a radio input for group name with the given value.
func NewRadio(name, value string) *Radio {
	return &Radio{BaseComponent: newBaseComponent(RadioSpec), name: name, option: value}
}

// WithLabel wraps the radio in a label.
func (r *Radio) WithLabel(label string) *Radio {
	r.label = label
	return r
}

// Checked marks the radio as the group's selection.
func (r *Radio) Checked(on bool) *Radio {
	r.checked = on
	return r
}

// Disabled disables the radio.
func (r *Radio) Disabled(on bool) *Radio {
	r.disabled = on
	return r
}

// WithSize sets sm, md or lg.
func (r *Radio) WithSize(size string) *Radio {
	r.set("size", size)
	return r
}

// WithColorScheme sets primary or accent.
func (r *Radio) WithColorScheme(scheme ColorScheme) *Radio {
	r.set("colorScheme", string(scheme))
	return r
}

// WithClass appends caller classes.
func (r *Radio) WithClass(class string) *Radio {
	r.class = class
	return r
}

// Select applies axis values from a generic selection.
func (r *Radio) Select(sel variant.Selection) *Radio {
	r.selectAll(sel)
	return r
}

// Classes returns the resolved class string.
func (r *Radio) Classes() (string, error) {
	return r.resolve()
}

// Render returns the radio, wrapped in a label when one is set.
func (r *Radio) Render() (markup.Node, error) {
	cls, err := r.Classes()
	if err != nil {
		return nil, err
	}

	input := markup.El("input", markup.Attrs{"type": "radio", "class": cls})
	input.SetIf(r.name != "", "name", r.name)
	input.SetIf(r.option != "", "value", r.option)
	input.SetIf(r.checked, "checked", "")
	input.SetIf(r.disabled, "disabled", "")
	r.decorate(input)

	box := markup.El("div", markup.Attrs{"class": "relative inline-flex"},
		input,
		markup.El("span", markup.Attrs{
			"class":       "absolute inset-0 m-auto pointer-events-none bg-white rounded-full opacity-0 peer-checked:opacity-100 transition-opacity " + radioDotSizes[r.value("size")],
			"aria-hidden": "true",
		}),
	)

	if r.label == "" {
		return box, nil
	}
	return labelled(ChoiceLabelSpec, r.disabled, box, r.label, LabelRight)
}
