// Package displayname formats component names with an optional atomic
// design level prefix.
package displayname

import (
	"fmt"
	"strings"
)

// Level is a component's atomic design level.
type Level string

const (
	Atom     Level = "atom"
	Molecule Level = "molecule"
	Organism Level = "organism"
	Template Level = "template"
)

// Levels lists every level in hierarchy order.
var Levels = []Level{Atom, Molecule, Organism, Template}

// Config selects how names are decorated. The zero value leaves names bare.
type Config struct {
	ShowPrefix bool
	UseEmojis  bool
}

var emojis = map[Level]string{
	Atom:     "⚛️",
	Molecule: "🧬",
	Organism: "🦠",
	Template: "📐",
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := emojis[level]; ok {
		return level, nil
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// Prefix returns the decoration for level: an emoji or "[Atom]" style tag.
func (l Level) Prefix(useEmoji bool) string {
	if useEmoji {
		return emojis[l]
	}
	if l == "" {
		return ""
	}
	return "[" + strings.ToUpper(string(l[:1])) + string(l[1:]) + "]"
}

// Name returns component decorated according to cfg.
func Name(component string, level Level, cfg Config) string {
	if !cfg.ShowPrefix {
		return component
	}
	prefix := level.Prefix(cfg.UseEmojis)
	if prefix == "" {
		return component
	}
	return prefix + " " + component
}
