package tokens

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

// Overrides is the TOML shape of a theme file:
//
//	[colors.primary]
//	500 = "#123456"
//
//	[radius]
//	lg = "1rem"
type Overrides struct {
	Colors  map[string]map[string]string `toml:"colors" validate:"dive,keys,required,endkeys,dive,keys,required,endkeys,hexcolor"`
	Radius  map[string]string            `toml:"radius" validate:"dive,keys,required,endkeys,required"`
	Spacing map[string]string            `toml:"spacing" validate:"dive,keys,required,endkeys,required"`
}

var overridesValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadOverrides reads a TOML theme file and merges it over the defaults.
func LoadOverrides(path string) (*Tokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	overrides, err := ParseOverrides(path, data)
	if err != nil {
		return nil, err
	}
	t := Default()
	t.Apply(overrides)
	return t, nil
}

// ParseOverrides decodes and validates theme data. Decode failures are
// returned as *errors.ParseError carrying the offending line.
func ParseOverrides(path string, data []byte) (Overrides, error) {
	var overrides Overrides
	if err := toml.Unmarshal(data, &overrides); err != nil {
		line := 0
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, _ = decodeErr.Position()
		}
		return Overrides{}, capsuleerrors.NewParseError(path, line, err)
	}

	if err := overridesValidator.Struct(overrides); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return Overrides{}, capsuleerrors.NewValidationError(
				fe.Namespace(),
				fmt.Sprintf("value %v fails %q", fe.Value(), fe.Tag()),
				err,
			)
		}
		return Overrides{}, capsuleerrors.NewValidationError("theme", "invalid theme", err)
	}
	return overrides, nil
}

// Apply merges overrides into t. New colour families are added; existing
// ones keep the steps the overrides leave out.
func (t *Tokens) Apply(o Overrides) {
	for family, steps := range o.Colors {
		scale, ok := t.Colors[family]
		if !ok {
			scale = Scale{}
			t.Colors[family] = scale
		}
		for step, hex := range steps {
			scale[step] = hex
		}
	}
	for key, value := range o.Radius {
		t.Radius[key] = value
	}
	for key, value := range o.Spacing {
		t.Spacing[key] = value
	}
}
