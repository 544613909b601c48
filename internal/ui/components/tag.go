package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// TagSpec is the Tag variant table.
var TagSpec = labelSpec("Tag")

// TagIconSpec sizes icons and the close glyph inside a Tag.
var TagIconSpec = &variant.Spec{
	Name: "TagIcon",
	Axes: []variant.Axis{
		{Name: "size", Options: []variant.Option{
			{Value: "sm", Classes: "w-3 h-3"},
			{Value: "md", Classes: "w-3.5 h-3.5"},
			{Value: "lg", Classes: "w-4 h-4"},
		}},
	},
	Defaults: map[string]string{"size": "md"},
}

// Tag is a label for categorization with optional icons and close button.
type Tag struct {
	BaseComponent
	text      string
	leftIcon  IconRenderer
	rightIcon IconRenderer
	closable  bool
}

// NewTag creates a tag.
func NewTag(text string) *Tag {
	return &Tag{BaseComponent: newBaseComponent(TagSpec), text: text}
}

// WithVariant sets the tag variant.
func (t *Tag) WithVariant(v BadgeVariant) *Tag {
	t.set("variant", string(v))
	return t
}

// WithColorScheme sets the tag colour.
func (t *Tag) WithColorScheme(scheme ColorScheme) *Tag {
	t.set("colorScheme", string(scheme))
	return t
}

// WithSize sets sm, md or lg.
func (t *Tag) WithSize(size string) *Tag {
	t.set("size", size)
	return t
}

// WithIcons sets the icons rendered before and after the text. Either may be nil.
func (t *Tag) WithIcons(left, right IconRenderer) *Tag {
	t.leftIcon = left
	t.rightIcon = right
	return t
}

// Closable appends a close button.
func (t *Tag) Closable(on bool) *Tag {
	t.closable = on
	return t
}

// WithClass appends caller classes.
func (t *Tag) WithClass(class string) *Tag {
	t.class = class
	return t
}

// WithAttr sets an extra HTML attribute.
func (t *Tag) WithAttr(name, value string) *Tag {
	t.attrs[name] = value
	return t
}

// Select applies axis values from a generic selection.
func (t *Tag) Select(sel variant.Selection) *Tag {
	t.selectAll(sel)
	return t
}

// Classes returns the resolved class string.
func (t *Tag) Classes() (string, error) {
	return t.resolve()
}

// IconClasses returns the size tokens handed to icon renderers.
func (t *Tag) IconClasses() (string, error) {
	return TagIconSpec.Resolve(variant.Selection{"size": t.value("size")})
}

// Render returns the tag element.
func (t *Tag) Render() (markup.Node, error) {
	cls, err := t.Classes()
	if err != nil {
		return nil, err
	}
	iconCls, err := t.IconClasses()
	if err != nil {
		return nil, err
	}

	el := markup.El("span", markup.Attrs{"class": cls})
	if t.leftIcon != nil {
		el.Append(t.leftIcon(iconCls))
	}
	el.Append(markup.Text(t.text))
	if t.rightIcon != nil {
		el.Append(t.rightIcon(iconCls))
	}
	if t.closable {
		el.Append(markup.El("button", markup.Attrs{
			"type":       "button",
			"class":      "ml-0.5 hover:opacity-70 focus:outline-none focus:opacity-70 transition-opacity",
			"aria-label": "Remove tag",
		}, closeIcon(iconCls)))
	}
	return t.decorate(el), nil
}
