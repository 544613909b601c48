package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

func TestColorLookup(t *testing.T) {
	t.Parallel()

	tok := Default()
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{token: "primary-500", want: "#2C2C2C", ok: true},
		{token: "accent-500", want: "#C67A5C", ok: true},
		{token: "neutral-950", want: "#0A0A0A", ok: true},
		{token: "info-600", want: "#2563EB", ok: true},
		{token: "border", want: "#D4D4D4", ok: true},
		{token: "text-secondary", want: "#525252", ok: true},
		{token: "white", want: "#FFFFFF", ok: true},
		{token: "primary-550", ok: false},
		{token: "teal-500", ok: false},
		{token: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := tok.Color(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Colors["primary"]["500"] = "#000000"
	a.Radius["lg"] = "0"

	b := Default()
	assert.Equal(t, "#2C2C2C", b.MustColor("primary-500"))
	assert.Equal(t, "0.75rem", b.Radius["lg"])
}

func TestFamiliesAndSteps(t *testing.T) {
	t.Parallel()

	tok := Default()
	families := tok.Families()
	require.GreaterOrEqual(t, len(families), 7)
	assert.Equal(t, []string{"primary", "accent", "neutral", "success", "warning", "error", "info"}, families[:7])
	assert.Equal(t, Shades, tok.Steps("warning"))
	assert.Equal(t, []string{"DEFAULT", "dark", "light"}, tok.Steps("border"))
}

func TestLoadOverridesMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[colors.primary]
500 = "#123456"

[colors.brand]
500 = "#ABCDEF"

[radius]
lg = "1rem"

[spacing]
"4" = "1.125rem"
`), 0o644))

	tok, err := LoadOverrides(path)
	require.NoError(t, err)

	assert.Equal(t, "#123456", tok.MustColor("primary-500"))
	assert.Equal(t, "#252525", tok.MustColor("primary-600"))
	assert.Equal(t, "#ABCDEF", tok.MustColor("brand-500"))
	assert.Equal(t, "brand", tok.Families()[len(tok.Families())-1])
	assert.Equal(t, "1rem", tok.Radius["lg"])
	assert.Equal(t, "1.125rem", tok.Spacing["4"])
}

func TestLoadOverridesReportsParseLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("[colors.primary]\n500 = \n"), 0o644))

	_, err := LoadOverrides(path)
	var parseErr *capsuleerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestLoadOverridesRejectsBadHex(t *testing.T) {
	t.Parallel()

	_, err := ParseOverrides("theme.toml", []byte("[colors.accent]\n500 = \"terracotta\"\n"))
	var validationErr *capsuleerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "Colors")
	assert.Contains(t, validationErr.Message, "hexcolor")
}

func TestLoadOverridesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
