// Package avatar derives the fallback appearance of an avatar without an
// image: a palette entry chosen by a stable name hash, and initials.
package avatar

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPalette is the fallback colour palette, in index order.
var DefaultPalette = []string{
	"bg-primary-500 text-white",
	"bg-accent-500 text-white",
	"bg-success-500 text-white",
	"bg-warning-500 text-white",
	"bg-error-500 text-white",
	"bg-info-500 text-white",
}

var upper = cases.Upper(language.Und)

// Hash computes hash*31 + unit over the UTF-16 code units of name with
// signed 32-bit wraparound.
func Hash(name string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(name)) {
		hash = hash*31 + int32(unit)
	}
	return hash
}

// IndexFor maps name onto [0, paletteSize). It panics when paletteSize is
// not positive.
func IndexFor(name string, paletteSize int) int {
	if paletteSize <= 0 {
		panic(fmt.Sprintf("avatar: palette size must be positive, got %d", paletteSize))
	}
	h := int64(Hash(name))
	if h < 0 {
		h = -h
	}
	return int(h % int64(paletteSize))
}

// FallbackColor returns the palette entry for name.
func FallbackColor(name string, palette []string) string {
	return palette[IndexFor(name, len(palette))]
}

// Initials returns up to two upper-cased initials: the first letter of the
// first and of the last space-separated word. Blank names yield "?".
func Initials(name string) string {
	var words []string
	for _, part := range strings.Split(strings.TrimSpace(name), " ") {
		if part != "" {
			words = append(words, part)
		}
	}

	switch len(words) {
	case 0:
		return "?"
	case 1:
		return upper.String(firstRune(words[0]))
	default:
		return upper.String(firstRune(words[0]) + firstRune(words[len(words)-1]))
	}
}

func firstRune(word string) string {
	for _, r := range word {
		return string(r)
	}
	return ""
}
