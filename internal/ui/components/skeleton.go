package components

import (
	"strings"

	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// SkeletonSpec is the Skeleton variant table.
var SkeletonSpec = &variant.Spec{
	Name: "Skeleton",
	Base: "bg-neutral-200 animate-pulse relative overflow-hidden",
	Axes: []variant.Axis{
		{Name: "variant", Options: []variant.Option{
			{Value: "text", Classes: "rounded h-4"},
			{Value: "circle", Classes: "rounded-full"},
			{Value: "rect", Classes: "rounded-md"},
		}},
	},
	Defaults: map[string]string{"variant": "text"},
}

// Skeleton is a loading placeholder. Once loaded it renders its content,
// or nothing.
type Skeleton struct {
	BaseComponent
	width   string
	height  string
	loaded  bool
	content markup.Node
}

// NewSkeleton creates a text skeleton.
func NewSkeleton() *Skeleton {
	return &Skeleton{BaseComponent: newBaseComponent(SkeletonSpec)}
}

// WithVariant sets text, circle or rect.
func (s *Skeleton) WithVariant(v string) *Skeleton {
	s.set("variant", v)
	return s
}

// WithDimensions sets CSS width and height. Bare numbers are pixels.
func (s *Skeleton) WithDimensions(width, height string) *Skeleton {
	s.width = cssLength(width)
	s.height = cssLength(height)
	return s
}

// Loaded swaps the placeholder for content.
func (s *Skeleton) Loaded(on bool, content markup.Node) *Skeleton {
	s.loaded = on
	s.content = content
	return s
}

// WithClass appends caller classes.
func (s *Skeleton) WithClass(class string) *Skeleton {
	s.class = class
	return s
}

// Select applies axis values from a generic selection.
func (s *Skeleton) Select(sel variant.Selection) *Skeleton {
	s.selectAll(sel)
	return s
}

// Classes returns the resolved class string.
func (s *Skeleton) Classes() (string, error) {
	return s.resolve()
}

// Render returns the placeholder, the loaded content, or nil.
func (s *Skeleton) Render() (markup.Node, error) {
	cls, err := s.Classes()
	if err != nil {
		return nil, err
	}
	if s.loaded {
		return s.content, nil
	}

	el := markup.El("div", markup.Attrs{
		"class":     cls,
		"aria-busy": "true",
		"aria-live": "polite",
	}, markup.El("span", markup.Attrs{"class": "sr-only"}, markup.Text("Loading...")))

	var style []string
	if s.width != "" {
		style = append(style, "width: "+s.width)
	}
	if s.height != "" {
		style = append(style, "height: "+s.height)
	}
	el.SetIf(len(style) > 0, "style", strings.Join(style, "; "))
	return s.decorate(el), nil
}

func cssLength(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			return v
		}
	}
	return v + "px"
}
