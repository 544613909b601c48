// Package variant resolves a component's declared style axes, defaults and
// compound rules into one merged class string.
package variant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/capsule/internal/classes"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

// Boolean option values for boolean-shaped axes.
const (
	True  = "true"
	False = "false"
)

// Option maps one axis value to its class tokens.
type Option struct {
	Value   string
	Classes string
}

// Axis is an independent style dimension. Options keep declaration order.
type Axis struct {
	Name    string
	Options []Option
}

// Compound emits Classes when every Match entry equals the resolved axis value.
type Compound struct {
	Match   map[string]string
	Classes string
}

// Selection assigns option values to axes. Empty values count as omitted.
type Selection map[string]string

// Spec declares a component's variant table.
type Spec struct {
	Name      string
	Base      string
	Axes      []Axis
	Defaults  map[string]string
	Compounds []Compound
}

// Bool converts a flag into its boolean option value.
func Bool(on bool) string {
	if on {
		return True
	}
	return False
}

// BoolAxis declares an axis with the true/false options.
func BoolAxis(name, whenTrue, whenFalse string) Axis {
	return Axis{Name: name, Options: []Option{{Value: True, Classes: whenTrue}, {Value: False, Classes: whenFalse}}}
}

// Lookup returns the classes of value.
func (a Axis) Lookup(value string) (string, bool) {
	for _, opt := range a.Options {
		if opt.Value == value {
			return opt.Classes, true
		}
	}
	return "", false
}

// Values lists option values in declaration order.
func (a Axis) Values() []string {
	values := make([]string, len(a.Options))
	for i, opt := range a.Options {
		values[i] = opt.Value
	}
	return values
}

// Axis returns the axis named name.
func (s *Spec) Axis(name string) (Axis, bool) {
	for _, axis := range s.Axes {
		if axis.Name == name {
			return axis, true
		}
	}
	return Axis{}, false
}

// AxisNames lists axis names in declaration order.
func (s *Spec) AxisNames() []string {
	names := make([]string, len(s.Axes))
	for i, axis := range s.Axes {
		names[i] = axis.Name
	}
	return names
}

// Validate checks the table's internal consistency: unique axes and
// options, defaults and compound matches referencing declared options.
func (s *Spec) Validate() error {
	seenAxes := make(map[string]struct{}, len(s.Axes))
	for i, axis := range s.Axes {
		field := fmt.Sprintf("axes[%d]", i)
		if strings.TrimSpace(axis.Name) == "" {
			return capsuleerrors.NewValidationError(field+".name", "is required", nil)
		}
		if _, dup := seenAxes[axis.Name]; dup {
			return capsuleerrors.NewValidationError(field+".name", fmt.Sprintf("duplicate axis %q", axis.Name), nil)
		}
		seenAxes[axis.Name] = struct{}{}

		if len(axis.Options) == 0 {
			return capsuleerrors.NewValidationError(field+".options", "must declare at least one option", nil)
		}
		seenOptions := make(map[string]struct{}, len(axis.Options))
		for _, opt := range axis.Options {
			if opt.Value == "" {
				return capsuleerrors.NewValidationError(field+".options", "option values must not be empty", nil)
			}
			if _, dup := seenOptions[opt.Value]; dup {
				return capsuleerrors.NewValidationError(field+".options", fmt.Sprintf("duplicate option %q", opt.Value), nil)
			}
			seenOptions[opt.Value] = struct{}{}
		}
	}

	for _, name := range sortedKeys(s.Defaults) {
		if err := s.checkOption(name, s.Defaults[name]); err != nil {
			return capsuleerrors.NewValidationError("defaults."+name, err.Error(), err)
		}
	}

	for i, rule := range s.Compounds {
		if len(rule.Match) == 0 {
			return capsuleerrors.NewValidationError(fmt.Sprintf("compounds[%d].match", i), "must match at least one axis", nil)
		}
		for _, name := range sortedKeys(rule.Match) {
			if err := s.checkOption(name, rule.Match[name]); err != nil {
				return capsuleerrors.NewValidationError(fmt.Sprintf("compounds[%d].match.%s", i, name), err.Error(), err)
			}
		}
	}
	return nil
}

// Effective returns the value each axis resolves to for sel. Axes with
// neither a selection nor a default are absent from the result.
func (s *Spec) Effective(sel Selection) (Selection, error) {
	for _, name := range sortedKeys(sel) {
		if sel[name] == "" {
			continue
		}
		if _, ok := s.Axis(name); !ok {
			return nil, capsuleerrors.NewInvalidVariantError(s.Name, name, sel[name], nil)
		}
	}

	resolved := make(Selection, len(s.Axes))
	for _, axis := range s.Axes {
		value := sel[axis.Name]
		if value == "" {
			value = s.Defaults[axis.Name]
		}
		if value == "" {
			continue
		}
		if _, ok := axis.Lookup(value); !ok {
			return nil, capsuleerrors.NewInvalidVariantError(s.Name, axis.Name, value, axis.Values())
		}
		resolved[axis.Name] = value
	}
	return resolved, nil
}

// Resolve emits base classes, per-axis classes in declaration order,
// matching compound classes in declaration order and finally extra, then
// merges the sequence so the last token of each utility group wins.
func (s *Spec) Resolve(sel Selection, extra ...string) (string, error) {
	resolved, err := s.Effective(sel)
	if err != nil {
		return "", err
	}

	emitted := make([]string, 0, 2+len(s.Axes)+len(s.Compounds)+len(extra))
	emitted = append(emitted, s.Base)
	for _, axis := range s.Axes {
		value, ok := resolved[axis.Name]
		if !ok {
			continue
		}
		cls, _ := axis.Lookup(value)
		emitted = append(emitted, cls)
	}
	for _, rule := range s.Compounds {
		if rule.matches(resolved) {
			emitted = append(emitted, rule.Classes)
		}
	}
	emitted = append(emitted, extra...)

	return classes.Merge(strings.Join(emitted, " ")), nil
}

// MustResolve is Resolve for static tables; it panics on an invalid selection.
func (s *Spec) MustResolve(sel Selection, extra ...string) string {
	out, err := s.Resolve(sel, extra...)
	if err != nil {
		panic(err)
	}
	return out
}

// Combinations returns every full selection, axes varying slowest-first in
// declaration order.
func (s *Spec) Combinations() []Selection {
	combos := []Selection{{}}
	for _, axis := range s.Axes {
		next := make([]Selection, 0, len(combos)*len(axis.Options))
		for _, combo := range combos {
			for _, opt := range axis.Options {
				sel := make(Selection, len(combo)+1)
				for k, v := range combo {
					sel[k] = v
				}
				sel[axis.Name] = opt.Value
				next = append(next, sel)
			}
		}
		combos = next
	}
	return combos
}

// Safelist returns every token any selection can emit, sorted and unique.
func (s *Spec) Safelist() []string {
	seen := make(map[string]struct{})
	add := func(cls string) {
		for _, token := range strings.Fields(cls) {
			seen[token] = struct{}{}
		}
	}

	add(s.Base)
	for _, axis := range s.Axes {
		for _, opt := range axis.Options {
			add(opt.Classes)
		}
	}
	for _, rule := range s.Compounds {
		add(rule.Classes)
	}

	out := make([]string, 0, len(seen))
	for token := range seen {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

func (c Compound) matches(resolved Selection) bool {
	for axis, want := range c.Match {
		if resolved[axis] != want {
			return false
		}
	}
	return true
}

func (s *Spec) checkOption(axisName, value string) error {
	axis, ok := s.Axis(axisName)
	if !ok {
		return fmt.Errorf("references unknown axis %q", axisName)
	}
	if _, ok := axis.Lookup(value); !ok {
		return fmt.Errorf("%q is not one of [%s]", value, strings.Join(axis.Values(), ", "))
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
