package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

// Entries converts the catalog into registry entries. Catalog components
// render through the registry's generic span.
func (c *Catalog) Entries() ([]components.Entry, error) {
	entries := make([]components.Entry, 0, len(c.Components))
	for _, comp := range c.Components {
		level := displayname.Atom
		if comp.Level != "" {
			parsed, err := displayname.ParseLevel(comp.Level)
			if err != nil {
				return nil, fmt.Errorf("component %s: %w", comp.Name, err)
			}
			level = parsed
		}

		entry := components.Entry{Name: comp.Name, Level: level, Spec: comp.Spec()}
		for _, story := range comp.Stories {
			entry.Stories = append(entry.Stories, components.Story{
				Name:     story.Name,
				Select:   variant.Selection(story.Select),
				Label:    story.Label,
				Disabled: story.Disabled,
			})
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Register adds every catalog component to r. A name clashing with an
// existing entry fails the whole call before anything is added.
func (c *Catalog) Register(r *components.Registry) error {
	entries, err := c.Entries()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if _, exists := r.Lookup(entry.Name); exists {
			return capsuleerrors.NewValidationError(entry.Name, "component already registered", nil)
		}
	}
	for _, entry := range entries {
		if err := r.Register(entry); err != nil {
			return err
		}
	}
	return nil
}
