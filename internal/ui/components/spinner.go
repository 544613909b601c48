package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/classes"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// SpinnerSpec is the Spinner glyph variant table.
var SpinnerSpec = &variant.Spec{
	Name: "Spinner",
	Base: "animate-spin",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "xs", Classes: "w-4 h-4"},
			{Value: "sm", Classes: "w-6 h-6"},
			{Value: "md", Classes: "w-8 h-8"},
			{Value: "lg", Classes: "w-12 h-12"},
			{Value: "xl", Classes: "w-16 h-16"},
		}},
		{Name: "colorScheme", Options: []variant.Option{
			{Value: "primary", Classes: "text-primary-500"},
			{Value: "accent", Classes: "text-accent-500"},
			{Value: "white", Classes: "text-white"},
		}},
	},
	Defaults: map[string]string{"size": "md", "colorScheme": "primary"},
}

// Spinner is a loading indicator with a screen-reader label.
type Spinner struct {
	BaseComponent
	label string
}

// NewSpinner creates a spinner labelled "Loading...".
func NewSpinner() *Spinner {
	return &Spinner{BaseComponent: newBaseComponent(SpinnerSpec), label: "Loading..."}
}

// WithLabel sets the accessible label.
func (s *Spinner) WithLabel(label string) *Spinner {
	if label != "" {
		s.label = label
	}
	return s
}

// WithSize sets xs through xl.
func (s *Spinner) WithSize(size string) *Spinner {
	s.set("size", size)
	return s
}

// WithColorScheme sets primary, accent or white.
func (s *Spinner) WithColorScheme(scheme string) *Spinner {
	s.set("colorScheme", scheme)
	return s
}

// WithClass appends caller classes to the wrapper.
func (s *Spinner) WithClass(class string) *Spinner {
	s.class = class
	return s
}

// Select applies axis values from a generic selection.
func (s *Spinner) Select(sel variant.Selection) *Spinner {
	s.selectAll(sel)
	return s
}

// Classes returns the resolved glyph class string. Caller classes go on
// the wrapper, not the glyph.
func (s *Spinner) Classes() (string, error) {
	return s.spec.Resolve(s.sel)
}

// Render returns the status wrapper with the glyph and hidden label.
func (s *Spinner) Render() (markup.Node, error) {
	cls, err := s.Classes()
	if err != nil {
		return nil, err
	}

	el := markup.El("span", markup.Attrs{
		"role":       "status",
		"aria-label": s.label,
		"class":      classes.CN("inline-block", s.class),
	},
		spinnerIcon(cls),
		markup.El("span", markup.Attrs{"class": "sr-only"}, markup.Text(s.label)),
	)
	return s.decorate(el), nil
}
