package classes

import (
	"sort"
	"strings"
)

// Utilities whose family is fixed regardless of value.
var exactFamilies = map[string]string{
	"block":        "display",
	"inline-block": "display",
	"inline":       "display",
	"flex":         "display",
	"inline-flex":  "display",
	"grid":         "display",
	"inline-grid":  "display",
	"hidden":       "display",
	"contents":     "display",
	"table":        "display",
	"flow-root":    "display",
	"list-item":    "display",

	"static":   "position",
	"fixed":    "position",
	"absolute": "position",
	"relative": "position",
	"sticky":   "position",

	"sr-only":     "sr",
	"not-sr-only": "sr",

	"visible":   "visibility",
	"invisible": "visibility",
	"collapse":  "visibility",

	"underline":    "text-decoration-line",
	"overline":     "text-decoration-line",
	"line-through": "text-decoration-line",
	"no-underline": "text-decoration-line",

	"italic":     "font-style",
	"not-italic": "font-style",

	"uppercase":   "text-transform",
	"lowercase":   "text-transform",
	"capitalize":  "text-transform",
	"normal-case": "text-transform",

	"truncate": "text-overflow",

	"transform":      "transform",
	"transform-none": "transform",
	"transform-gpu":  "transform",
	"transform-cpu":  "transform",

	"grow":   "grow",
	"shrink": "shrink",

	"antialiased":          "font-smoothing",
	"subpixel-antialiased": "font-smoothing",
}

type resolver func(value string) string

// same names the family after the prefix itself.
func same(prefix string) resolver {
	return func(string) string { return prefix }
}

var prefixFamilies = map[string]resolver{
	"text":           textFamily,
	"font":           fontFamily,
	"bg":             bgFamily,
	"border":         borderFamily(""),
	"border-x":       borderFamily("-x"),
	"border-y":       borderFamily("-y"),
	"border-t":       borderFamily("-t"),
	"border-r":       borderFamily("-r"),
	"border-b":       borderFamily("-b"),
	"border-l":       borderFamily("-l"),
	"border-s":       borderFamily("-s"),
	"border-e":       borderFamily("-e"),
	"ring":           ringFamily,
	"ring-offset":    ringOffsetFamily,
	"outline":        outlineFamily,
	"shadow":         shadowFamily,
	"flex":           flexFamily,
	"stroke":         widthOrColor("stroke-w", "stroke-color"),
	"decoration":     decorationFamily,
	"divide-x":       same("divide-x"),
	"divide-y":       same("divide-y"),
	"divide":         styleOrColor("divide-style", "divide-color"),
	"grid-cols":      same("grid-cols"),
	"grid-rows":      same("grid-rows"),
	"grid-flow":      same("grid-flow"),
	"overflow":       same("overflow"),
	"overflow-x":     same("overflow-x"),
	"overflow-y":     same("overflow-y"),
	"translate-x":    same("translate-x"),
	"translate-y":    same("translate-y"),
	"scale":          same("scale"),
	"scale-x":        same("scale-x"),
	"scale-y":        same("scale-y"),
	"pointer-events": same("pointer-events"),
	"line-clamp":     same("line-clamp"),
	"place-content":  same("place-content"),
	"place-items":    same("place-items"),
	"place-self":     same("place-self"),
	"backdrop-blur":  same("backdrop-blur"),
	"will-change":    same("will-change"),
}

// Prefixes whose family is the prefix itself.
var plainPrefixes = []string{
	"p", "px", "py", "pt", "pr", "pb", "pl", "ps", "pe",
	"m", "mx", "my", "mt", "mr", "mb", "ml", "ms", "me",
	"space-x", "space-y",
	"w", "h", "size", "min-w", "min-h", "max-w", "max-h",
	"gap", "gap-x", "gap-y",
	"inset", "inset-x", "inset-y", "top", "right", "bottom", "left", "start", "end",
	"rounded", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e",
	"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl", "rounded-ss", "rounded-se", "rounded-es", "rounded-ee",
	"z", "order", "opacity", "basis", "grow", "shrink", "leading", "tracking",
	"duration", "delay", "ease", "animate", "transition", "cursor", "select", "appearance",
	"whitespace", "object", "aspect", "items", "justify", "self", "content",
	"col", "row", "underline-offset", "rotate", "skew-x", "skew-y", "origin",
	"fill", "accent", "caret", "outline-offset", "blur", "list", "align", "break",
	"resize", "indent", "columns", "from", "via", "to",
}

// overrides lists, per family, the narrower families a later token replaces.
var overrides = map[string][]string{
	"p":  {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
	"px": {"pr", "pl", "ps", "pe"},
	"py": {"pt", "pb"},
	"m":  {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
	"mx": {"mr", "ml", "ms", "me"},
	"my": {"mt", "mb"},

	"size": {"w", "h"},
	"gap":  {"gap-x", "gap-y"},

	"inset":   {"inset-x", "inset-y", "top", "right", "bottom", "left", "start", "end"},
	"inset-x": {"right", "left", "start", "end"},
	"inset-y": {"top", "bottom"},

	"rounded":   {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl", "rounded-ss", "rounded-se", "rounded-es", "rounded-ee"},
	"rounded-t": {"rounded-tl", "rounded-tr"},
	"rounded-r": {"rounded-tr", "rounded-br"},
	"rounded-b": {"rounded-br", "rounded-bl"},
	"rounded-l": {"rounded-tl", "rounded-bl"},
	"rounded-s": {"rounded-ss", "rounded-es"},
	"rounded-e": {"rounded-se", "rounded-ee"},

	"border-w":       {"border-w-x", "border-w-y", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-s", "border-w-e"},
	"border-w-x":     {"border-w-r", "border-w-l"},
	"border-w-y":     {"border-w-t", "border-w-b"},
	"border-color":   {"border-color-x", "border-color-y", "border-color-t", "border-color-r", "border-color-b", "border-color-l", "border-color-s", "border-color-e"},
	"border-color-x": {"border-color-r", "border-color-l"},
	"border-color-y": {"border-color-t", "border-color-b"},

	"overflow":  {"overflow-x", "overflow-y"},
	"scale":     {"scale-x", "scale-y"},
	"font-size": {"leading"},
}

var (
	fontSizes    = setOf("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")
	textAligns   = setOf("left", "center", "right", "justify", "start", "end")
	textWraps    = setOf("wrap", "nowrap", "balance", "pretty")
	textOverflow = setOf("ellipsis", "clip")
	fontWeights  = setOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	lineStyles   = setOf("solid", "dashed", "dotted", "double", "hidden", "none")
	shadowSizes  = setOf("", "sm", "md", "lg", "xl", "2xl", "inner", "none")
	bgPositions  = setOf("bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top")
	bgRepeats    = setOf("repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space")
)

// sortedPrefixes holds every known prefix, longest first, so "ring-offset"
// wins over "ring" and "rounded-tl" over "rounded-t".
var sortedPrefixes = func() []string {
	seen := make(map[string]struct{})
	var all []string
	for prefix := range prefixFamilies {
		seen[prefix] = struct{}{}
		all = append(all, prefix)
	}
	for _, prefix := range plainPrefixes {
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		all = append(all, prefix)
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})
	return all
}()

// classify returns the utility family for a bare utility (no modifiers,
// no important marker, no leading minus). ok is false for unknown utilities.
func classify(utility string) (string, bool) {
	if strings.HasPrefix(utility, "[") && strings.HasSuffix(utility, "]") {
		inner := utility[1 : len(utility)-1]
		if idx := strings.IndexByte(inner, ':'); idx > 0 {
			return "arbitrary:" + inner[:idx], true
		}
		return "", false
	}

	if family, ok := exactFamilies[utility]; ok {
		return family, true
	}

	for _, prefix := range sortedPrefixes {
		var value string
		switch {
		case utility == prefix:
			value = ""
		case strings.HasPrefix(utility, prefix+"-"):
			value = utility[len(prefix)+1:]
		default:
			continue
		}
		if fn, ok := prefixFamilies[prefix]; ok {
			return fn(value), true
		}
		return prefix, true
	}

	return "", false
}

func textFamily(value string) string {
	base := stripPostfix(value)
	switch {
	case has(fontSizes, base):
		return "font-size"
	case has(textAligns, base):
		return "text-align"
	case has(textWraps, base):
		return "text-wrap"
	case has(textOverflow, base):
		return "text-overflow"
	case isArbitrary(value) && isLength(value):
		return "font-size"
	default:
		return "text-color"
	}
}

func fontFamily(value string) string {
	if has(fontWeights, value) || (isArbitrary(value) && isNumber(strings.Trim(value, "[]"))) {
		return "font-weight"
	}
	return "font-family"
}

func bgFamily(value string) string {
	switch {
	case value == "fixed" || value == "local" || value == "scroll":
		return "bg-attachment"
	case value == "auto" || value == "cover" || value == "contain":
		return "bg-size"
	case value == "none" || strings.HasPrefix(value, "gradient"):
		return "bg-image"
	case has(bgPositions, value):
		return "bg-position"
	case has(bgRepeats, value):
		return "bg-repeat"
	case strings.HasPrefix(value, "clip-"):
		return "bg-clip"
	case strings.HasPrefix(value, "origin-"):
		return "bg-origin"
	default:
		return "bg-color"
	}
}

// borderFamily handles border and its side variants (border-t-2, border-x-error-500).
func borderFamily(side string) resolver {
	return func(value string) string {
		switch {
		case value == "" || isNumber(value) || (isArbitrary(value) && isLength(value)):
			return "border-w" + side
		case side == "" && has(lineStyles, value):
			return "border-style"
		case side == "" && (value == "collapse" || value == "separate"):
			return "border-collapse"
		default:
			return "border-color" + side
		}
	}
}

func ringFamily(value string) string {
	if value == "" || value == "inset" || isNumber(value) || (isArbitrary(value) && isLength(value)) {
		return "ring-w"
	}
	return "ring-color"
}

func ringOffsetFamily(value string) string {
	if isNumber(value) || (isArbitrary(value) && isLength(value)) {
		return "ring-offset-w"
	}
	return "ring-offset-color"
}

func outlineFamily(value string) string {
	switch {
	case value == "" || has(lineStyles, value):
		return "outline-style"
	case isNumber(value) || (isArbitrary(value) && isLength(value)):
		return "outline-w"
	default:
		return "outline-color"
	}
}

func shadowFamily(value string) string {
	if has(shadowSizes, value) {
		return "shadow"
	}
	return "shadow-color"
}

func flexFamily(value string) string {
	switch value {
	case "row", "row-reverse", "col", "col-reverse":
		return "flex-direction"
	case "wrap", "wrap-reverse", "nowrap":
		return "flex-wrap"
	default:
		return "flex"
	}
}

func decorationFamily(value string) string {
	switch {
	case value == "solid" || value == "double" || value == "dotted" || value == "dashed" || value == "wavy":
		return "decoration-style"
	case value == "auto" || value == "from-font" || isNumber(value):
		return "decoration-thickness"
	default:
		return "decoration-color"
	}
}

func widthOrColor(width, color string) resolver {
	return func(value string) string {
		if isNumber(value) || (isArbitrary(value) && isLength(value)) {
			return width
		}
		return color
	}
}

func styleOrColor(style, color string) resolver {
	return func(value string) string {
		if has(lineStyles, value) {
			return style
		}
		return color
	}
}

func setOf(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}

func stripPostfix(value string) string {
	if isArbitrary(value) {
		return value
	}
	if idx := strings.IndexByte(value, '/'); idx > 0 {
		return value[:idx]
	}
	return value
}

func isArbitrary(value string) bool {
	return strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")
}

func isNumber(value string) bool {
	if value == "" {
		return false
	}
	dot := false
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}

func isLength(arbitrary string) bool {
	inner := strings.Trim(arbitrary, "[]")
	if strings.HasPrefix(inner, "length:") {
		return true
	}
	for _, unit := range []string{"px", "rem", "em", "%", "vh", "vw", "ch", "pt"} {
		if strings.HasSuffix(inner, unit) && isNumber(strings.TrimSuffix(inner, unit)) {
			return true
		}
	}
	return isNumber(inner)
}
