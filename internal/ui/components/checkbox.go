package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/toggle"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// CheckboxSpec is the Checkbox variant table.
var CheckboxSpec = &variant.Spec{
	Name: "Checkbox",
	Base: "appearance-none rounded border-2 transition-all cursor-pointer " +
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
			{Value: "primary", Classes: "border-neutral-300 checked:bg-primary-500 focus:ring-primary-500 indeterminate:bg-primary-500"},
			{Value: "accent", Classes: "border-neutral-300 checked:bg-accent-500 focus:ring-accent-500 indeterminate:bg-accent-500"},
		}},
	},
	Defaults: map[string]string{"size": "md", "colorScheme": "primary"},
}

// ChoiceLabelSpec styles the label wrapping a Checkbox or Radio.
var ChoiceLabelSpec = &variant.Spec{
	Name:     "ChoiceLabel",
	Base:     "inline-flex items-center gap-2 cursor-pointer",
	Axes:     []variant.Axis{variant.BoolAxis("disabled", "cursor-not-allowed opacity-50", "")},
	Defaults: map[string]string{"disabled": variant.False},
}

var (
	checkIconSizes = map[string]string{"sm": "w-3 h-3", "md": "w-3.5 h-3.5", "lg": "w-4 h-4"}
	dashIconSizes  = map[string]string{"sm": "w-2 h-0.5", "md": "w-2.5 h-0.5", "lg": "w-3 h-0.5"}
)

// Checkbox is a labelled boolean input with an optional indeterminate state.
type Checkbox struct {
	BaseComponent
	state         *toggle.State
	label         string
	name          string
	indeterminate bool
	disabled      bool
	onChange      func(bool)
}

// NewCheckbox creates an uncontrolled checkbox starting at defaultChecked.
func NewCheckbox(defaultChecked bool) *Checkbox {
	return &Checkbox{
		BaseComponent: newBaseComponent(CheckboxSpec),
		state:         toggle.New(toggle.Options{Default: defaultChecked}),
	}
}

// Checked supplies the caller's value; nil selects uncontrolled mode.
func (c *Checkbox) Checked(controlled *bool) *Checkbox {
	c.state.Sync(controlled)
	return c
}

// OnChange registers the callback fired by Click.
func (c *Checkbox) OnChange(fn func(checked bool)) *Checkbox {
	c.onChange = fn
	return c
}

// WithLabel wraps the checkbox in a label.
func (c *Checkbox) WithLabel(label string) *Checkbox {
	c.label = label
	return c
}

// WithName sets the form field name.
func (c *Checkbox) WithName(name string) *Checkbox {
	c.name = name
	return c
}

// Indeterminate marks the checkbox as partially selected.
func (c *Checkbox) Indeterminate(on bool) *Checkbox {
	c.indeterminate = on
	return c
}

// Disabled disables the checkbox.
func (c *Checkbox) Disabled(on bool) *Checkbox {
	c.disabled = on
	return c
}

// WithSize sets sm, md or lg.
func (c *Checkbox) WithSize(size string) *Checkbox {
	c.set("size", size)
	return c
}

// WithColorScheme sets primary or accent.
func (c *Checkbox) WithColorScheme(scheme ColorScheme) *Checkbox {
	c.set("colorScheme", string(scheme))
	return c
}

// WithClass appends caller classes.
func (c *Checkbox) WithClass(class string) *Checkbox {
	c.class = class
	return c
}

// WithAttr sets an extra HTML attribute.
func (c *Checkbox) WithAttr(name, value string) *Checkbox {
	c.attrs[name] = value
	return c
}

// Select applies axis values from a generic selection.
func (c *Checkbox) Select(sel variant.Selection) *Checkbox {
	c.selectAll(sel)
	return c
}

// IsChecked returns the displayed state.
func (c *Checkbox) IsChecked() bool {
	return c.state.Current()
}

// Click toggles the checkbox unless it is disabled. The second result
// reports whether the change callback fired.
func (c *Checkbox) Click() (bool, bool) {
	if c.disabled {
		return c.state.Current(), false
	}
	return c.state.Toggle(c.onChange), true
}

// Classes returns the resolved class string.
func (c *Checkbox) Classes() (string, error) {
	return c.resolve()
}

// Render returns the checkbox, wrapped in a label when one is set.
func (c *Checkbox) Render() (markup.Node, error) {
	cls, err := c.Classes()
	if err != nil {
		return nil, err
	}

	checked := c.state.Current()
	ariaChecked := variant.Bool(checked)
	if c.indeterminate {
		ariaChecked = "mixed"
	}

	input := markup.El("input", markup.Attrs{
		"type":         "checkbox",
		"class":        cls,
		"aria-checked": ariaChecked,
	})
	input.SetIf(checked, "checked", "")
	input.SetIf(c.disabled, "disabled", "")
	input.SetIf(c.name != "", "name", c.name)
	c.decorate(input)

	size := c.value("size")
	dashOpacity := "opacity-0"
	if c.indeterminate {
		dashOpacity = "opacity-100"
	}

	box := markup.El("div", markup.Attrs{"class": "relative inline-flex"},
		input,
		markup.El("svg", markup.Attrs{
			"class":       "absolute inset-0 m-auto pointer-events-none text-white opacity-0 peer-checked:opacity-100 transition-opacity " + checkIconSizes[size],
			"viewBox":     "0 0 16 16",
			"fill":        "none",
			"xmlns":       "http://www.w3.org/2000/svg",
			"aria-hidden": "true",
		}, markup.El("path", markup.Attrs{
			"d":    "M12.207 4.793a1 1 0 010 1.414l-5 5a1 1 0 01-1.414 0l-2-2a1 1 0 011.414-1.414L6.5 9.086l4.293-4.293a1 1 0 011.414 0z",
			"fill": "currentColor",
		})),
		markup.El("span", markup.Attrs{
			"class":       "absolute inset-0 m-auto pointer-events-none bg-white rounded-sm transition-opacity " + dashOpacity + " " + dashIconSizes[size],
			"aria-hidden": "true",
		}),
	)

	if c.label == "" {
		return box, nil
	}
	return labelled(ChoiceLabelSpec, c.disabled, box, c.label, LabelRight)
}
