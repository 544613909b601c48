package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonDanger    ButtonVariant = "danger"
)

// ButtonSize specifies the button height and padding.
type ButtonSize string

const (
	ButtonSizeSm ButtonSize = "sm"
	ButtonSizeMd ButtonSize = "md"
	ButtonSizeLg ButtonSize = "lg"
)

// ButtonSpec is the Button variant table.
var ButtonSpec = &variant.Spec{
	Name: "Button",
	Base: "inline-flex items-center justify-center gap-2 " +
		"rounded-lg font-medium transition-colors " +
		"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 " +
		"disabled:pointer-events-none disabled:opacity-50",
	Axes: []variant.Axis{
		{Name: "variant", Options: []variant.Option{
			{Value: "primary", Classes: "bg-primary-500 text-white hover:bg-primary-600 focus-visible:ring-primary-500"},
			{Value: "secondary", Classes: "bg-accent-500 text-white hover:bg-accent-600 focus-visible:ring-accent-500"},
			{Value: "outline", Classes: "border-2 border-primary-500 text-primary-500 bg-transparent hover:bg-primary-50 focus-visible:ring-primary-500"},
			{Value: "ghost", Classes: "text-primary-500 bg-transparent hover:bg-neutral-100 focus-visible:ring-primary-500"},
			{Value: "danger", Classes: "bg-error-500 text-white hover:bg-error-600 focus-visible:ring-error-500"},
		}},
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "h-9 px-3 text-sm"},
			{Value: "md", Classes: "h-11 px-6 text-base"},
			{Value: "lg", Classes: "h-14 px-8 text-lg"},
		}},
		variant.BoolAxis("fullWidth", "w-full", ""),
	},
	Defaults: map[string]string{"variant": "primary", "size": "md", "fullWidth": variant.False},
}

// Button is the primary action component.
type Button struct {
	BaseComponent
	label    markup.Node
	loading  bool
	disabled bool
	kind     string
}

// NewButton creates a button with a text label.
func NewButton(label string) *Button {
	return &Button{BaseComponent: newBaseComponent(ButtonSpec), label: markup.Text(label), kind: "button"}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.set("variant", string(v))
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(s ButtonSize) *Button {
	b.set("size", string(s))
	return b
}

// FullWidth stretches the button to its container.
func (b *Button) FullWidth(on bool) *Button {
	b.set("fullWidth", variant.Bool(on))
	return b
}

// Loading replaces the label with a spinner and disables the button.
func (b *Button) Loading(on bool) *Button {
	b.loading = on
	return b
}

// Disabled disables the button.
func (b *Button) Disabled(on bool) *Button {
	b.disabled = on
	return b
}

// WithType sets the HTML button type (button, submit, reset).
func (b *Button) WithType(kind string) *Button {
	b.kind = kind
	return b
}

// WithContent replaces the label with arbitrary markup.
func (b *Button) WithContent(content markup.Node) *Button {
	b.label = content
	return b
}

// WithClass appends caller classes; they win over the variant table.
func (b *Button) WithClass(class string) *Button {
	b.class = class
	return b
}

// WithID sets the element id.
func (b *Button) WithID(id string) *Button {
	b.id = id
	return b
}

// WithAttr sets an extra HTML attribute.
func (b *Button) WithAttr(name, value string) *Button {
	b.attrs[name] = value
	return b
}

// Select applies axis values from a generic selection.
func (b *Button) Select(sel variant.Selection) *Button {
	b.selectAll(sel)
	return b
}

// Classes returns the resolved class string.
func (b *Button) Classes() (string, error) {
	return b.resolve()
}

// Render returns the button element.
func (b *Button) Render() (markup.Node, error) {
	cls, err := b.Classes()
	if err != nil {
		return nil, err
	}

	el := markup.El("button", markup.Attrs{"class": cls, "type": b.kind})
	el.SetIf(b.disabled || b.loading, "disabled", "")
	if b.loading {
		el.Set("aria-busy", "true")
		el.Append(spinnerIcon("animate-spin h-4 w-4"), markup.Text("Loading..."))
	} else {
		el.Append(b.label)
	}
	return b.decorate(el), nil
}
