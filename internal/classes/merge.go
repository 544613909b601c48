// Package classes merges utility class strings so that later tokens in the
// same utility group replace earlier ones.
package classes

import (
	"sort"
	"strings"
)

type token struct {
	raw    string
	prefix string
	family string
}

func (t token) key() string {
	return t.prefix + "|" + t.family
}

// Merge tokenizes classes on whitespace and removes every token that a later
// token conflicts with. Survivors keep their emission order.
func Merge(classes string) string {
	fields := strings.Fields(classes)
	if len(fields) == 0 {
		return ""
	}

	kept := make([]token, 0, len(fields))
	for _, raw := range fields {
		next := parse(raw)
		conflicts := conflictKeys(next)
		filtered := kept[:0]
		for _, existing := range kept {
			if _, clash := conflicts[existing.key()]; clash {
				continue
			}
			filtered = append(filtered, existing)
		}
		kept = append(filtered, next)
	}

	out := make([]string, len(kept))
	for i, t := range kept {
		out[i] = t.raw
	}
	return strings.Join(out, " ")
}

// CN joins the inputs like Join and then merges the result.
func CN(inputs ...any) string {
	return Merge(Join(inputs...))
}

func conflictKeys(t token) map[string]struct{} {
	keys := map[string]struct{}{t.key(): {}}
	for _, narrower := range overrides[t.family] {
		keys[t.prefix+"|"+narrower] = struct{}{}
	}
	return keys
}

func parse(raw string) token {
	modifiers, utility := splitModifiers(raw)

	important := false
	if strings.HasPrefix(utility, "!") {
		important = true
		utility = utility[1:]
	} else if strings.HasSuffix(utility, "!") {
		important = true
		utility = strings.TrimSuffix(utility, "!")
	}
	utility = strings.TrimPrefix(utility, "-")

	sort.Strings(modifiers)
	prefix := strings.Join(modifiers, ":")
	if important {
		prefix += "!"
	}

	family, ok := classify(utility)
	if !ok {
		// Unknown tokens only collide with exact duplicates.
		family = "raw:" + utility
	}
	return token{raw: raw, prefix: prefix, family: family}
}

// splitModifiers splits "md:hover:bg-x" into [md hover] and "bg-x", ignoring
// colons nested inside brackets or parentheses.
func splitModifiers(raw string) ([]string, string) {
	var modifiers []string
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, raw[start:i])
				start = i + 1
			}
		}
	}
	return modifiers, raw[start:]
}

// Utility describes one class token.
type Utility struct {
	Modifiers []string
	Important bool
	// Name is the bare utility without modifiers, important marker or sign.
	Name string
	// Family is the conflict group, empty for unknown utilities.
	Family string
}

// Describe parses a single class token.
func Describe(raw string) Utility {
	modifiers, utility := splitModifiers(raw)
	important := strings.HasPrefix(utility, "!") || strings.HasSuffix(utility, "!")
	utility = strings.TrimSuffix(strings.TrimPrefix(utility, "!"), "!")
	utility = strings.TrimPrefix(utility, "-")
	family, _ := classify(utility)
	return Utility{Modifiers: modifiers, Important: important, Name: utility, Family: family}
}
