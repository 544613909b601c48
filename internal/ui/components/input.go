package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/classes"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// InputSpec is the Input variant table.
var InputSpec = &variant.Spec{
	Name: "Input",
	Base: "w-full rounded-md border transition-colors placeholder:text-neutral-400 " +
		"focus:outline-none focus:ring-2 focus:ring-offset-2 " +
		"disabled:cursor-not-allowed disabled:opacity-50 disabled:bg-neutral-50",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "h-9 px-3 text-sm"},
			{Value: "md", Classes: "h-11 px-4 text-base"},
			{Value: "lg", Classes: "h-14 px-6 text-lg"},
		}},
		{Name: "variant", Options: []variant.Option{
			{Value: "default", Classes: "border-neutral-300 bg-white text-neutral-900 hover:border-neutral-400 focus:border-primary-500 focus:ring-primary-500"},
			{Value: "error", Classes: "border-error-500 bg-error-50 text-error-900 hover:border-error-600 focus:border-error-500 focus:ring-error-500"},
			{Value: "success", Classes: "border-success-500 bg-success-50 text-success-900 hover:border-success-600 focus:border-success-500 focus:ring-success-500"},
		}},
		variant.BoolAxis("fullWidth", "w-full", "w-auto"),
	},
	Defaults: map[string]string{"size": "md", "variant": "default", "fullWidth": variant.False},
}

// Input is a text field with optional leading and trailing icons.
type Input struct {
	BaseComponent
	kind        string
	name        string
	current     string
	placeholder string
	disabled    bool
	leftIcon    IconRenderer
	rightIcon   IconRenderer
}

// NewInput creates a text input.
func NewInput(name string) *Input {
	return &Input{BaseComponent: newBaseComponent(InputSpec), kind: "text", name: name}
}

// WithType sets the HTML input type.
func (i *Input) WithType(kind string) *Input {
	i.kind = kind
	return i
}

// WithValue sets the current value.
func (i *Input) WithValue(value string) *Input {
	i.current = value
	return i
}

// WithPlaceholder sets the placeholder text.
func (i *Input) WithPlaceholder(text string) *Input {
	i.placeholder = text
	return i
}

// Disabled disables the input.
func (i *Input) Disabled(on bool) *Input {
	i.disabled = on
	return i
}

// WithIcons sets icons inside the field. Either may be nil.
func (i *Input) WithIcons(left, right IconRenderer) *Input {
	i.leftIcon = left
	i.rightIcon = right
	return i
}

// WithSize sets sm, md or lg.
func (i *Input) WithSize(size string) *Input {
	i.set("size", size)
	return i
}

// WithVariant sets default, error or success.
func (i *Input) WithVariant(v string) *Input {
	i.set("variant", v)
	return i
}

// FullWidth stretches the input to its container.
func (i *Input) FullWidth(on bool) *Input {
	i.set("fullWidth", variant.Bool(on))
	return i
}

// WithClass appends caller classes.
func (i *Input) WithClass(class string) *Input {
	i.class = class
	return i
}

// WithAttr sets an extra HTML attribute.
func (i *Input) WithAttr(name, value string) *Input {
	i.attrs[name] = value
	return i
}

// Select applies axis values from a generic selection.
func (i *Input) Select(sel variant.Selection) *Input {
	i.selectAll(sel)
	return i
}

// Classes returns the resolved class string. Icon padding is emitted
// after the caller's classes, as the icons would otherwise overlap text.
func (i *Input) Classes() (string, error) {
	cls, err := i.resolve()
	if err != nil {
		return "", err
	}
	return classes.CN(cls, map[string]bool{
		"pl-10": i.leftIcon != nil,
		"pr-10": i.rightIcon != nil,
	}), nil
}

// Render returns the input, wrapped with its icons when set.
func (i *Input) Render() (markup.Node, error) {
	cls, err := i.Classes()
	if err != nil {
		return nil, err
	}

	input := markup.El("input", markup.Attrs{"type": i.kind, "class": cls})
	input.SetIf(i.name != "", "name", i.name)
	input.SetIf(i.current != "", "value", i.current)
	input.SetIf(i.placeholder != "", "placeholder", i.placeholder)
	input.SetIf(i.disabled, "disabled", "")
	i.decorate(input)

	if i.leftIcon == nil && i.rightIcon == nil {
		return input, nil
	}

	width := "w-auto"
	if i.value("fullWidth") == variant.True {
		width = "w-full"
	}
	wrapper := markup.El("div", markup.Attrs{"class": "relative inline-flex items-center " + width})
	if i.leftIcon != nil {
		wrapper.Append(inputIcon("left-3", i.leftIcon))
	}
	wrapper.Append(input)
	if i.rightIcon != nil {
		wrapper.Append(inputIcon("right-3", i.rightIcon))
	}
	return wrapper, nil
}

func inputIcon(side string, icon IconRenderer) *markup.Element {
	return markup.El("div", markup.Attrs{
		"class": "absolute inset-y-0 flex items-center pointer-events-none text-neutral-500 " + side,
	}, icon("w-5 h-5"))
}
