package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashMatchesRecurrence(t *testing.T) {
	t.Parallel()

	// 'a'*31 + 'b'
	assert.Equal(t, int32(97*31+98), Hash("ab"))
	assert.Equal(t, int32(0), Hash(""))
	assert.Equal(t, int32(-1367319387), Hash("John Doe"))
	assert.Equal(t, int32(-2011217263), Hash("Jane Smith"))
	// surrogate pair: two code units
	assert.Equal(t, int32(1772899), Hash("😀"))
}

func TestIndexFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want int
	}{
		{name: "John Doe", want: 3},
		{name: "ab", want: 3},
		{name: "a", want: 1},
		{name: "", want: 0},
		{name: "Bob Johnson", want: 2},
		{name: "Alice", want: 4},
		{name: "Zoë Ångström", want: 2},
		{name: "Jane Smith", want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IndexFor(tt.name, len(DefaultPalette))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, IndexFor(tt.name, len(DefaultPalette)))
		})
	}
}

func TestIndexForPanicsOnEmptyPalette(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { IndexFor("John Doe", 0) })
}

func TestFallbackColor(t *testing.T) {
	t.Parallel()

	require.Len(t, DefaultPalette, 6)
	assert.Equal(t, "bg-warning-500 text-white", FallbackColor("John Doe", DefaultPalette))
	assert.Equal(t, "bg-error-500 text-white", FallbackColor("Alice", DefaultPalette))
}

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":               "?",
		"   ":            "?",
		"Madonna":        "M",
		"John Doe":       "JD",
		"John Jacob Doe": "JD",
		"  jane   smith ": "JS",
		"émile zola":     "ÉZ",
		"ßeta":           "SS",
	}

	for in, want := range tests {
		assert.Equal(t, want, Initials(in), "Initials(%q)", in)
	}
}
