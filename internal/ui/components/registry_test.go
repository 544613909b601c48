package components

import (
	"testing"

	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/toggle"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistersEveryComponent(t *testing.T) {
	t.Parallel()

	r := Builtin(displayname.Config{})
	assert.Equal(t, []string{
		"Avatar", "Badge", "Button", "Checkbox", "Divider", "IconButton", "Input",
		"Link", "Radio", "Skeleton", "Spinner", "Switch", "Tag",
	}, r.Names())
	assert.Equal(t, "Button", r.Entries()[0].Name)
}

func TestBuiltinStoriesRender(t *testing.T) {
	t.Parallel()

	r := Builtin(displayname.Config{})
	for _, entry := range r.Entries() {
		require.NotEmpty(t, entry.Stories, entry.Name)
		for _, story := range entry.Stories {
			html, err := r.Render(entry.Name, story.Input())
			require.NoError(t, err, "%s/%s", entry.Name, story.Name)
			assert.NotEmpty(t, html, "%s/%s", entry.Name, story.Name)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	t.Parallel()

	r := Builtin(displayname.Config{})
	entry, ok := r.Lookup("iconbutton")
	require.True(t, ok)
	assert.Equal(t, "IconButton", entry.Name)

	story, ok := entry.Story("ROUND")
	require.True(t, ok)
	assert.Equal(t, variant.True, story.Select["isRound"])

	_, ok = r.Lookup("carousel")
	assert.False(t, ok)
}

func TestRenderAddsDisplayNameWhenEnabled(t *testing.T) {
	t.Parallel()

	plain, err := Builtin(displayname.Config{}).Render("badge", RenderInput{Label: "x"})
	require.NoError(t, err)
	assert.NotContains(t, plain, "data-component")

	text, err := Builtin(displayname.Config{ShowPrefix: true}).Render("badge", RenderInput{Label: "x"})
	require.NoError(t, err)
	assert.Contains(t, text, `data-component="[Atom] Badge"`)

	emoji, err := Builtin(displayname.Config{ShowPrefix: true, UseEmojis: true}).Render("Switch", RenderInput{})
	require.NoError(t, err)
	assert.Contains(t, emoji, `data-component="⚛️ Switch"`)
}

func TestRenderControlledSwitch(t *testing.T) {
	t.Parallel()

	html, err := Builtin(displayname.Config{}).Render("switch", RenderInput{Checked: toggle.Ptr(true)})
	require.NoError(t, err)
	assert.Contains(t, html, `aria-checked="true"`)
	assert.Contains(t, html, "translate-x-5.5")
}

func TestRegisterRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	r := NewRegistry(displayname.Config{})
	require.NoError(t, r.Register(Entry{Name: "Chip", Spec: &variant.Spec{Base: "inline-flex"}}))

	var validationErr *capsuleerrors.ValidationError
	require.ErrorAs(t, r.Register(Entry{Name: "chip", Spec: &variant.Spec{}}), &validationErr)
	assert.Contains(t, validationErr.Message, "already registered")

	err := r.Register(Entry{
		Name: "Pill",
		Spec: &variant.Spec{
			Axes:      []variant.Axis{{Name: "size", Options: []variant.Option{{Value: "sm"}}}},
			Compounds: []variant.Compound{{Match: map[string]string{"tone": "x"}}},
		},
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "compounds[0].match.tone", validationErr.Field)

	err = r.Register(Entry{
		Name:    "Dot",
		Spec:    &variant.Spec{Axes: []variant.Axis{{Name: "size", Options: []variant.Option{{Value: "sm"}}}}},
		Stories: []Story{{Name: "big", Select: variant.Selection{"size": "xl"}}},
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Dot.stories.big", validationErr.Field)
}

func TestGenericEntryRendersSpan(t *testing.T) {
	t.Parallel()

	r := NewRegistry(displayname.Config{})
	r.MustRegister(Entry{Name: "Chip", Spec: &variant.Spec{Base: "inline-flex px-2"}})

	html, err := r.Render("chip", RenderInput{Label: "hi", Class: "px-4"})
	require.NoError(t, err)
	assert.Equal(t, `<span class="inline-flex px-4">hi</span>`, html)
}
