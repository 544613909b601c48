package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("catalog.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "catalog.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: catalog.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("theme.toml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: theme.toml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].compounds[0].match", "references unknown axis \"tone\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].compounds[0].match", validationErr.Field)
	require.Contains(t, validationErr.Error(), "unknown axis")
}

func TestInvalidVariantErrorUnknownOption(t *testing.T) {
	t.Parallel()

	err := NewInvalidVariantError("Button", "size", "xxl", []string{"sm", "md", "lg"})

	var variantErr *InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
	require.False(t, variantErr.UnknownAxis())
	require.Equal(t, `invalid variant: Button: size="xxl" is not one of [sm, md, lg]`, err.Error())
}

func TestInvalidVariantErrorUnknownAxis(t *testing.T) {
	t.Parallel()

	err := NewInvalidVariantError("", "tone", "loud", nil)

	var variantErr *InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
	require.True(t, variantErr.UnknownAxis())
	require.Equal(t, `invalid variant: variant: unknown axis "tone"`, err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var variantErr *InvalidVariantError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, variantErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
