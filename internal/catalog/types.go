// Package catalog loads user-declared components from YAML files.
package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// Catalog is the root of a catalog document.
type Catalog struct {
	Version    string      `yaml:"version" validate:"required,semver"`
	Components []Component `yaml:"components" validate:"required,min=1,dive"`
}

// Component declares one variant table plus its stories.
type Component struct {
	Name      string     `yaml:"name" validate:"required,component_name"`
	Level     string     `yaml:"level,omitempty" validate:"omitempty,oneof=atom molecule organism template"`
	Base      ClassList  `yaml:"base,omitempty"`
	Axes      []Axis     `yaml:"axes,omitempty" validate:"omitempty,dive"`
	Defaults  Selection  `yaml:"defaults,omitempty"`
	Compounds []Compound `yaml:"compounds,omitempty" validate:"omitempty,dive"`
	Stories   []Story    `yaml:"stories,omitempty" validate:"omitempty,dive"`
}

// Axis is a named dimension whose options keep their YAML order.
type Axis struct {
	Name    string  `yaml:"name" validate:"required,axis_name"`
	Options Options `yaml:"options" validate:"required,min=1,dive"`
}

// Option maps one axis value to classes.
type Option struct {
	Value   string    `yaml:"value" validate:"required"`
	Classes ClassList `yaml:"classes"`
}

// Compound applies classes when every Match entry holds.
type Compound struct {
	Match   Selection `yaml:"match" validate:"required,min=1"`
	Classes ClassList `yaml:"classes"`
}

// Story is a named selection rendered by snapshots and the storybook.
type Story struct {
	Name     string    `yaml:"name" validate:"required"`
	Select   Selection `yaml:"select,omitempty"`
	Label    string    `yaml:"label,omitempty"`
	Disabled bool      `yaml:"disabled,omitempty"`
}

// ClassList accepts either a class string or a list of class strings.
type ClassList string

// UnmarshalYAML joins sequences with single spaces.
func (c *ClassList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = ClassList(strings.Join(strings.Fields(value.Value), " "))
		return nil
	case yaml.SequenceNode:
		var parts []string
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: class lists hold strings only", item.Line)
			}
			parts = append(parts, strings.Fields(item.Value)...)
		}
		*c = ClassList(strings.Join(parts, " "))
		return nil
	}
	return fmt.Errorf("line %d: expected a class string or list", value.Line)
}

// Selection maps axis names to values. Scalars of any YAML type are read
// verbatim, so `fullWidth: true` selects the "true" option.
type Selection map[string]string

// UnmarshalYAML reads a mapping of scalars.
func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of axis to value", value.Line)
	}
	out := make(Selection, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value for %q must be a scalar", val.Line, key.Value)
		}
		out[key.Value] = val.Value
	}
	*s = out
	return nil
}

// Options keeps axis options in declaration order. It accepts a mapping
// (`sm: "px-2"`) or a sequence of {value, classes} entries.
type Options []Option

// UnmarshalYAML preserves mapping order, which a Go map would lose.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		out := make(Options, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			var classes ClassList
			if err := val.Decode(&classes); err != nil {
				return err
			}
			out = append(out, Option{Value: key.Value, Classes: classes})
		}
		*o = out
		return nil
	case yaml.SequenceNode:
		var list []Option
		if err := value.Decode(&list); err != nil {
			return err
		}
		*o = list
		return nil
	}
	return fmt.Errorf("line %d: expected options as a mapping or list", value.Line)
}

// Spec converts the component into a variant table.
func (c Component) Spec() *variant.Spec {
	spec := &variant.Spec{
		Name: c.Name,
		Base: string(c.Base),
	}
	for _, axis := range c.Axes {
		a := variant.Axis{Name: axis.Name}
		for _, opt := range axis.Options {
			a.Options = append(a.Options, variant.Option{Value: opt.Value, Classes: string(opt.Classes)})
		}
		spec.Axes = append(spec.Axes, a)
	}
	if len(c.Defaults) > 0 {
		spec.Defaults = make(map[string]string, len(c.Defaults))
		for k, v := range c.Defaults {
			spec.Defaults[k] = v
		}
	}
	for _, compound := range c.Compounds {
		match := make(map[string]string, len(compound.Match))
		for k, v := range compound.Match {
			match[k] = v
		}
		spec.Compounds = append(spec.Compounds, variant.Compound{Match: match, Classes: string(compound.Classes)})
	}
	return spec
}
