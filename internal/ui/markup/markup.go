// Package markup is a small HTML element tree that components render into.
package markup

import (
	"html"
	"sort"
	"strings"
)

// Node renders itself as HTML.
type Node interface {
	writeTo(b *strings.Builder)
}

// Attrs holds element attributes. An empty value renders as a bare
// attribute name (disabled, checked).
type Attrs map[string]string

// Element is an HTML element with attributes and children.
type Element struct {
	Tag      string
	Attrs    Attrs
	Children []Node
}

var voidTags = map[string]struct{}{
	"area": {}, "br": {}, "col": {}, "hr": {}, "img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
}

// El builds an element. Nil children are skipped.
func El(tag string, attrs Attrs, children ...Node) *Element {
	e := &Element{Tag: tag, Attrs: Attrs{}}
	for k, v := range attrs {
		e.Attrs[k] = v
	}
	e.Append(children...)
	return e
}

// Append adds children, skipping nil nodes.
func (e *Element) Append(children ...Node) *Element {
	for _, child := range children {
		if child == nil || isNilElement(child) {
			continue
		}
		e.Children = append(e.Children, child)
	}
	return e
}

// Set assigns an attribute and returns e.
func (e *Element) Set(name, value string) *Element {
	e.Attrs[name] = value
	return e
}

// SetIf assigns an attribute when cond holds.
func (e *Element) SetIf(cond bool, name, value string) *Element {
	if cond {
		e.Attrs[name] = value
	}
	return e
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)

	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		if value := e.Attrs[name]; value != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(value))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')

	if _, void := voidTags[e.Tag]; void {
		return
	}
	for _, child := range e.Children {
		child.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

type text string

func (t text) writeTo(b *strings.Builder) { b.WriteString(html.EscapeString(string(t))) }

type raw string

func (r raw) writeTo(b *strings.Builder) { b.WriteString(string(r)) }

type fragment []Node

func (f fragment) writeTo(b *strings.Builder) {
	for _, n := range f {
		if n != nil && !isNilElement(n) {
			n.writeTo(b)
		}
	}
}

// Text is escaped character data.
func Text(s string) Node { return text(s) }

// Raw is trusted HTML written verbatim.
func Raw(s string) Node { return raw(s) }

// Fragment groups nodes without a wrapper element.
func Fragment(nodes ...Node) Node { return fragment(nodes) }

// Render serializes n.
func Render(n Node) string {
	if n == nil || isNilElement(n) {
		return ""
	}
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func isNilElement(n Node) bool {
	e, ok := n.(*Element)
	return ok && e == nil
}
