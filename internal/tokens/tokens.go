// Package tokens holds the Capsule design tokens: colour scales, radii and
// spacing, with optional TOML overrides.
package tokens

import (
	"fmt"
	"sort"
	"strings"
)

// Shades lists the numbered steps of every colour scale.
var Shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// Scale maps a shade (or a named step such as DEFAULT) to a hex colour.
type Scale map[string]string

// Tokens is a complete token set.
type Tokens struct {
	Colors  map[string]Scale
	Radius  map[string]string
	Spacing map[string]string
	order   []string
}

// Default returns a fresh copy of the built-in Capsule tokens.
func Default() *Tokens {
	t := &Tokens{
		Colors:  make(map[string]Scale, len(defaultColors)),
		Radius:  copyMap(defaultRadius),
		Spacing: copyMap(defaultSpacing),
	}
	for _, family := range defaultOrder {
		t.Colors[family] = Scale(copyMap(defaultColors[family]))
		t.order = append(t.order, family)
	}
	return t
}

// Families returns colour family names, built-ins first in their usual
// order, then any added by overrides in alphabetical order.
func (t *Tokens) Families() []string {
	seen := make(map[string]bool, len(t.order))
	out := make([]string, 0, len(t.Colors))
	for _, family := range t.order {
		if _, ok := t.Colors[family]; ok {
			out = append(out, family)
			seen[family] = true
		}
	}
	var extra []string
	for family := range t.Colors {
		if !seen[family] {
			extra = append(extra, family)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Steps returns the keys of a family's scale, numbered shades first.
func (t *Tokens) Steps(family string) []string {
	scale := t.Colors[family]
	out := make([]string, 0, len(scale))
	seen := make(map[string]bool, len(scale))
	for _, shade := range Shades {
		if _, ok := scale[shade]; ok {
			out = append(out, shade)
			seen[shade] = true
		}
	}
	var named []string
	for key := range scale {
		if !seen[key] {
			named = append(named, key)
		}
	}
	sort.Strings(named)
	return append(out, named...)
}

// Color resolves a colour token such as "primary-500", "border" or
// "white". The second result is false for unknown tokens.
func (t *Tokens) Color(token string) (string, bool) {
	token = strings.TrimSpace(token)
	switch token {
	case "white":
		return "#FFFFFF", true
	case "black":
		return "#000000", true
	case "":
		return "", false
	}

	if scale, ok := t.Colors[token]; ok {
		hex, ok := scale["DEFAULT"]
		return hex, ok
	}

	idx := strings.LastIndex(token, "-")
	if idx <= 0 {
		return "", false
	}
	scale, ok := t.Colors[token[:idx]]
	if !ok {
		return "", false
	}
	hex, ok := scale[token[idx+1:]]
	return hex, ok
}

// MustColor is Color for tokens known to exist.
func (t *Tokens) MustColor(token string) string {
	hex, ok := t.Color(token)
	if !ok {
		panic(fmt.Sprintf("tokens: unknown colour %q", token))
	}
	return hex
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
