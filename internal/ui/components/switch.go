package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/toggle"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// SwitchSpec is the Switch track variant table.
var SwitchSpec = &variant.Spec{
	Name: "Switch",
	Base: "relative inline-flex items-center rounded-full transition-colors " +
		"focus:outline-none focus:ring-2 focus:ring-offset-2 " +
		"disabled:cursor-not-allowed disabled:opacity-50 cursor-pointer",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "h-5 w-9"},
			{Value: "md", Classes: "h-6 w-11"},
			{Value: "lg", Classes: "h-7 w-14"},
		}},
		{Name: "colorScheme", Options: []variant.Option{
			{Value: "primary", Classes: "bg-neutral-300 aria-checked:bg-primary-500 focus:ring-primary-500"},
			{Value: "accent", Classes: "bg-neutral-300 aria-checked:bg-accent-500 focus:ring-accent-500"},
		}},
	},
	Defaults: map[string]string{"size": "md", "colorScheme": "primary"},
}

// SwitchThumbSpec positions the thumb by size and checked state.
var SwitchThumbSpec = &variant.Spec{
	Name: "SwitchThumb",
	Base: "pointer-events-none inline-block rounded-full bg-white shadow-lg transform transition-transform",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "h-4 w-4"},
			{Value: "md", Classes: "h-5 w-5"},
			{Value: "lg", Classes: "h-6 w-6"},
		}},
		variant.BoolAxis("checked", "", ""),
	},
	Defaults: map[string]string{"size": "md", "checked": variant.False},
	Compounds: []variant.Compound{
		{Match: map[string]string{"size": "sm", "checked": variant.False}, Classes: "translate-x-0.5"},
		{Match: map[string]string{"size": "sm", "checked": variant.True}, Classes: "translate-x-4.5"},
		{Match: map[string]string{"size": "md", "checked": variant.False}, Classes: "translate-x-0.5"},
		{Match: map[string]string{"size": "md", "checked": variant.True}, Classes: "translate-x-5.5"},
		{Match: map[string]string{"size": "lg", "checked": variant.False}, Classes: "translate-x-0.5"},
		{Match: map[string]string{"size": "lg", "checked": variant.True}, Classes: "translate-x-7.5"},
	},
}

// SwitchLabelSpec styles the label wrapper.
var SwitchLabelSpec = &variant.Spec{
	Name:     "SwitchLabel",
	Base:     "inline-flex items-center gap-2",
	Axes:     []variant.Axis{variant.BoolAxis("disabled", "cursor-not-allowed opacity-50", "cursor-pointer")},
	Defaults: map[string]string{"disabled": variant.False},
}

// LabelPosition places a label before or after its control.
type LabelPosition string

const (
	LabelLeft  LabelPosition = "left"
	LabelRight LabelPosition = "right"
)

// Switch is a toggle control. It is controlled when the caller supplies a
// value through Checked and uncontrolled otherwise.
type Switch struct {
	BaseComponent
	state    *toggle.State
	label    string
	position LabelPosition
	disabled bool
	onChange func(bool)
}

// NewSwitch creates an uncontrolled switch starting at defaultChecked.
func NewSwitch(defaultChecked bool) *Switch {
	return &Switch{
		BaseComponent: newBaseComponent(SwitchSpec),
		state:         toggle.New(toggle.Options{Default: defaultChecked}),
		position:      LabelRight,
	}
}

// Checked supplies the caller's value. nil returns the switch to
// uncontrolled mode without touching its own value.
func (s *Switch) Checked(controlled *bool) *Switch {
	s.state.Sync(controlled)
	return s
}

// OnChange registers the callback fired by Click.
func (s *Switch) OnChange(fn func(checked bool)) *Switch {
	s.onChange = fn
	return s
}

// WithLabel wraps the switch in a label.
func (s *Switch) WithLabel(label string, position LabelPosition) *Switch {
	s.label = label
	if position != "" {
		s.position = position
	}
	return s
}

// WithSize sets sm, md or lg.
func (s *Switch) WithSize(size string) *Switch {
	s.set("size", size)
	return s
}

// WithColorScheme sets primary or accent.
func (s *Switch) WithColorScheme(scheme ColorScheme) *Switch {
	s.set("colorScheme", string(scheme))
	return s
}

// Disabled disables the switch; clicks are ignored.
func (s *Switch) Disabled(on bool) *Switch {
	s.disabled = on
	return s
}

// WithClass appends caller classes.
func (s *Switch) WithClass(class string) *Switch {
	s.class = class
	return s
}

// WithAttr sets an extra HTML attribute.
func (s *Switch) WithAttr(name, value string) *Switch {
	s.attrs[name] = value
	return s
}

// Select applies axis values from a generic selection.
func (s *Switch) Select(sel variant.Selection) *Switch {
	s.selectAll(sel)
	return s
}

// IsChecked returns the displayed state.
func (s *Switch) IsChecked() bool {
	return s.state.Current()
}

// IsControlled reports whether the caller owns the value.
func (s *Switch) IsControlled() bool {
	return s.state.IsControlled()
}

// Click handles activation. It returns the value passed to the change
// callback, and false with no callback when the switch is disabled.
func (s *Switch) Click() (bool, bool) {
	if s.disabled {
		return s.state.Current(), false
	}
	return s.state.Toggle(s.onChange), true
}

// Classes returns the resolved track class string.
func (s *Switch) Classes() (string, error) {
	return s.resolve()
}

// ThumbClasses returns the resolved thumb class string.
func (s *Switch) ThumbClasses() (string, error) {
	return SwitchThumbSpec.Resolve(variant.Selection{
		"size":    s.value("size"),
		"checked": variant.Bool(s.state.Current()),
	})
}

// Render returns the switch, wrapped in a label when one is set.
func (s *Switch) Render() (markup.Node, error) {
	cls, err := s.Classes()
	if err != nil {
		return nil, err
	}
	thumb, err := s.ThumbClasses()
	if err != nil {
		return nil, err
	}

	button := markup.El("button", markup.Attrs{
		"type":         "button",
		"role":         "switch",
		"aria-checked": variant.Bool(s.state.Current()),
		"class":        cls,
	}, markup.El("span", markup.Attrs{"class": thumb}))
	button.SetIf(s.disabled, "disabled", "")
	s.decorate(button)

	if s.label == "" {
		return button, nil
	}
	return labelled(SwitchLabelSpec, s.disabled, button, s.label, s.position)
}

// labelled wraps control in a label element styled by spec's disabled axis.
func labelled(spec *variant.Spec, disabled bool, control markup.Node, label string, position LabelPosition) (markup.Node, error) {
	cls, err := spec.Resolve(variant.Selection{"disabled": variant.Bool(disabled)})
	if err != nil {
		return nil, err
	}
	text := markup.El("span", markup.Attrs{"class": "select-none"}, markup.Text(label))
	if position == LabelLeft {
		return markup.El("label", markup.Attrs{"class": cls}, text, control), nil
	}
	return markup.El("label", markup.Attrs{"class": cls}, control, text), nil
}
