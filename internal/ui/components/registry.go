package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

// Story is a named selection used by snapshots and the storybook.
type Story struct {
	Name     string
	Select   variant.Selection
	Label    string
	Disabled bool
}

// Input returns the render input for the story.
func (s Story) Input() RenderInput {
	return RenderInput{Select: s.Select, Label: s.Label, Disabled: s.Disabled}
}

// RenderInput is what a generic render receives.
type RenderInput struct {
	Select variant.Selection
	Label  string
	Class  string
	// Checked drives toggle components; nil leaves them uncontrolled.
	Checked  *bool
	Disabled bool
}

// RenderFunc renders a component from a generic input.
type RenderFunc func(in RenderInput) (markup.Node, error)

// Entry describes one registered component.
type Entry struct {
	Name    string
	Level   displayname.Level
	Spec    *variant.Spec
	Stories []Story
	// Render is optional; entries without one render a span carrying the
	// resolved classes.
	Render RenderFunc
}

// Classes resolves sel against the entry's table.
func (e Entry) Classes(sel variant.Selection, class string) (string, error) {
	return e.Spec.Resolve(sel, class)
}

// Story returns the story named name, case-insensitively.
func (e Entry) Story(name string) (Story, bool) {
	for _, story := range e.Stories {
		if strings.EqualFold(story.Name, name) {
			return story, true
		}
	}
	return Story{}, false
}

// Node renders the entry as a markup tree.
func (e Entry) Node(in RenderInput) (markup.Node, error) {
	if e.Render != nil {
		return e.Render(in)
	}
	cls, err := e.Classes(in.Select, in.Class)
	if err != nil {
		return nil, err
	}
	return markup.El("span", markup.Attrs{"class": cls}, markup.Text(in.Label)), nil
}

// Registry maps component names to entries. Lookups ignore case; listing
// keeps registration order.
type Registry struct {
	entries map[string]Entry
	order   []string
	display displayname.Config
}

// NewRegistry creates an empty registry.
func NewRegistry(display displayname.Config) *Registry {
	return &Registry{entries: make(map[string]Entry), display: display}
}

// Register validates and adds an entry. Names must be unique ignoring case.
func (r *Registry) Register(entry Entry) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return capsuleerrors.NewValidationError("name", "component name is required", nil)
	}
	if entry.Spec == nil {
		return capsuleerrors.NewValidationError(name, "component has no variant table", nil)
	}
	key := strings.ToLower(name)
	if _, dup := r.entries[key]; dup {
		return capsuleerrors.NewValidationError(name, "component already registered", nil)
	}
	if err := entry.Spec.Validate(); err != nil {
		return fmt.Errorf("component %s: %w", name, err)
	}
	for _, story := range entry.Stories {
		if _, err := entry.Spec.Resolve(story.Select); err != nil {
			return capsuleerrors.NewValidationError(name+".stories."+story.Name, "story does not resolve", err)
		}
	}

	entry.Name = name
	r.entries[key] = entry
	r.order = append(r.order, key)
	return nil
}

// MustRegister is Register for built-in tables.
func (r *Registry) MustRegister(entry Entry) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Lookup finds an entry by name, ignoring case.
func (r *Registry) Lookup(name string) (Entry, bool) {
	entry, ok := r.entries[strings.ToLower(strings.TrimSpace(name))]
	return entry, ok
}

// Entries returns entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, key := range r.order {
		out[i] = r.entries[key]
	}
	return out
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.entries[key].Name)
	}
	sort.Strings(names)
	return names
}

// DisplayName decorates an entry's name per the registry's display config.
func (r *Registry) DisplayName(entry Entry) string {
	return displayname.Name(entry.Name, entry.Level, r.display)
}

// Render renders component name as HTML. When display prefixes are
// enabled the root element carries a data-component attribute.
func (r *Registry) Render(name string, in RenderInput) (string, error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown component %q", name)
	}
	node, err := entry.Node(in)
	if err != nil {
		return "", err
	}
	if el, ok := node.(*markup.Element); ok && el != nil && r.display.ShowPrefix {
		el.Set("data-component", r.DisplayName(entry))
	}
	return markup.Render(node), nil
}
