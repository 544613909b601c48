package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

const chipCatalog = `version: "1.0"
components:
  - name: chip
    level: molecule
    base: ["inline-flex", "rounded-full"]
    axes:
      - name: size
        options: { sm: "px-2 text-xs", md: "px-3 text-sm", lg: "px-4 text-base" }
      - name: tone
        options:
          neutral: bg-neutral-100 text-neutral-700
          accent: bg-accent-100 text-accent-700
      - name: dismissible
        options: { true: "pr-1", false: "" }
    defaults: { size: md, tone: neutral, dismissible: false }
    compounds:
      - match: { size: sm, dismissible: true }
        classes: "gap-1"
    stories:
      - name: small
        select: { size: sm }
        label: Chip
      - name: dismissible
        select: { dismissible: true, tone: accent }
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	cat, err := Load(writeCatalog(t, chipCatalog))
	require.NoError(t, err)
	require.Len(t, cat.Components, 1)

	chip := cat.Components[0]
	assert.Equal(t, ClassList("inline-flex rounded-full"), chip.Base)
	require.Len(t, chip.Axes, 3)

	spec := chip.Spec()
	assert.Equal(t, []string{"size", "tone", "dismissible"}, spec.AxisNames())
	size, ok := spec.Axis("size")
	require.True(t, ok)
	assert.Equal(t, []string{"sm", "md", "lg"}, size.Values())
	dismissible, _ := spec.Axis("dismissible")
	assert.Equal(t, []string{"true", "false"}, dismissible.Values())

	assert.Equal(t, Selection{"size": "md", "tone": "neutral", "dismissible": "false"}, chip.Defaults)

	got, err := spec.Resolve(map[string]string{"size": "sm", "dismissible": "true"})
	require.NoError(t, err)
	assert.Equal(t, "inline-flex rounded-full px-2 text-xs bg-neutral-100 text-neutral-700 pr-1 gap-1", got)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, err error)
	}{
		{
			name:     "malformed yaml reports a line",
			contents: "version: \"1.0\"\ncomponents:\n  - name: chip\n    axes: [\n",
			assert: func(t *testing.T, err error) {
				var parseErr *capsuleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown field is rejected",
			contents: "version: \"1.0\"\ncomponents:\n  - name: chip\n    colour: red\n",
			assert: func(t *testing.T, err error) {
				var parseErr *capsuleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 4, parseErr.Line)
			},
		},
		{
			name:     "empty document",
			contents: "",
			assert: func(t *testing.T, err error) {
				var parseErr *capsuleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "empty")
			},
		},
		{
			name:     "bad version",
			contents: "version: beta\ncomponents:\n  - name: chip\n",
			assert: func(t *testing.T, err error) {
				var validationErr *capsuleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "version", validationErr.Field)
				assert.Contains(t, validationErr.Message, "semver")
			},
		},
		{
			name:     "bad component name",
			contents: "version: \"1.0\"\ncomponents:\n  - name: \"9 lives\"\n",
			assert: func(t *testing.T, err error) {
				var validationErr *capsuleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[0].name", validationErr.Field)
				assert.Contains(t, validationErr.Message, "component_name")
			},
		},
		{
			name:     "unknown level",
			contents: "version: \"1.0\"\ncomponents:\n  - name: chip\n    level: page\n",
			assert: func(t *testing.T, err error) {
				var validationErr *capsuleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[0].level", validationErr.Field)
			},
		},
		{
			name:     "duplicate names ignore case",
			contents: "version: \"1.0\"\ncomponents:\n  - name: chip\n  - name: Chip\n",
			assert: func(t *testing.T, err error) {
				var validationErr *capsuleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[1].name", validationErr.Field)
			},
		},
		{
			name: "compound on unknown axis",
			contents: `version: "1.0"
components:
  - name: chip
    axes:
      - name: size
        options: { sm: px-2 }
    compounds:
      - match: { tone: accent }
        classes: font-bold
`,
			assert: func(t *testing.T, err error) {
				var validationErr *capsuleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[0].compounds[0].match.tone", validationErr.Field)
			},
		},
		{
			name: "story selecting an unknown option",
			contents: `version: "1.0"
components:
  - name: chip
    axes:
      - name: size
        options: { sm: px-2 }
    stories:
      - name: huge
        select: { size: xl }
`,
			assert: func(t *testing.T, err error) {
				var validationErr *capsuleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "components[0].stories[0].select", validationErr.Field)
				var variantErr *capsuleerrors.InvalidVariantError
				assert.ErrorAs(t, err, &variantErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse("catalog.yaml", []byte(tc.contents))
			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *capsuleerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsAcceptSequenceForm(t *testing.T) {
	t.Parallel()

	cat, err := Parse("catalog.yaml", []byte(`version: "1.0.0"
components:
  - name: pill
    axes:
      - name: size
        options:
          - value: sm
            classes: [px-2, text-xs]
          - value: lg
            classes: px-4 text-lg
`))
	require.NoError(t, err)
	assert.Equal(t, Options{
		{Value: "sm", Classes: "px-2 text-xs"},
		{Value: "lg", Classes: "px-4 text-lg"},
	}, cat.Components[0].Axes[0].Options)
}

func TestRegisterAddsCatalogComponents(t *testing.T) {
	t.Parallel()

	cat, err := Parse("catalog.yaml", []byte(chipCatalog))
	require.NoError(t, err)

	r := components.Builtin(displayname.Config{ShowPrefix: true})
	require.NoError(t, cat.Register(r))

	entry, ok := r.Lookup("CHIP")
	require.True(t, ok)
	assert.Equal(t, displayname.Molecule, entry.Level)
	require.Len(t, entry.Stories, 2)

	html, err := r.Render("chip", entry.Stories[0].Input())
	require.NoError(t, err)
	assert.Equal(t, `<span class="inline-flex rounded-full px-2 text-xs bg-neutral-100 text-neutral-700" data-component="[Molecule] chip">Chip</span>`, html)
}

func TestRegisterRejectsBuiltinNames(t *testing.T) {
	t.Parallel()

	cat, err := Parse("catalog.yaml", []byte("version: \"1.0\"\ncomponents:\n  - name: zeta\n  - name: button\n"))
	require.NoError(t, err)

	r := components.Builtin(displayname.Config{})
	var validationErr *capsuleerrors.ValidationError
	require.ErrorAs(t, cat.Register(r), &validationErr)
	assert.Equal(t, "button", validationErr.Field)

	_, added := r.Lookup("zeta")
	assert.False(t, added)
}
