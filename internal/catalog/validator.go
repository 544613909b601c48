package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern        = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	axisNamePattern      = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator used by the
// catalog package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("axis_name", func(fl validator.FieldLevel) bool {
			return axisNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs structural and cross-field validation of a catalog.
func Validate(cat *Catalog) error {
	if cat == nil {
		return capsuleerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(cat); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cat.Components))
	for i, comp := range cat.Components {
		key := strings.ToLower(comp.Name)
		if first, dup := seen[key]; dup {
			return capsuleerrors.NewValidationError(
				fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component %q (first declared at components[%d])", comp.Name, first),
				nil,
			)
		}
		seen[key] = i

		spec := comp.Spec()
		if err := spec.Validate(); err != nil {
			return prefixValidationError(fieldForComponent(i, ""), err)
		}
		for j, story := range comp.Stories {
			if _, err := spec.Resolve(map[string]string(story.Select)); err != nil {
				return capsuleerrors.NewValidationError(
					fieldForComponent(i, fmt.Sprintf("stories[%d].select", j)),
					err.Error(),
					err,
				)
			}
		}
	}
	return nil
}

// convertValidationError normalizes validator errors into catalog
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return capsuleerrors.NewValidationError(field, msg, err)
	}

	return capsuleerrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName turns "Catalog.Components[0].Axes[1].Name" into
// "components[0].axes[1].name".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func prefixValidationError(prefix string, err error) error {
	var ve *capsuleerrors.ValidationError
	if errors.As(err, &ve) {
		return capsuleerrors.NewValidationError(prefix+ve.Field, ve.Message, err)
	}
	return capsuleerrors.NewValidationError(strings.TrimSuffix(prefix, "."), err.Error(), err)
}

func fieldForComponent(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("components[%d].", index)
	}
	return fmt.Sprintf("components[%d].%s", index, field)
}

