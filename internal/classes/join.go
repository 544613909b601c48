package classes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Join concatenates truthy class inputs with single spaces. Strings are kept
// when non-empty, slices are flattened, maps contribute their true keys in
// sorted order, non-zero numbers are formatted. Everything else is ignored.
func Join(inputs ...any) string {
	parts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		parts = appendInput(parts, input)
	}
	return strings.Join(parts, " ")
}

func appendInput(parts []string, input any) []string {
	switch v := input.(type) {
	case nil:
		return parts
	case string:
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	case []string:
		for _, s := range v {
			parts = appendInput(parts, s)
		}
	case []any:
		for _, item := range v {
			parts = appendInput(parts, item)
		}
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for key, on := range v {
			if on {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			parts = appendInput(parts, key)
		}
	case int:
		if v != 0 {
			parts = append(parts, strconv.Itoa(v))
		}
	case int64:
		if v != 0 {
			parts = append(parts, strconv.FormatInt(v, 10))
		}
	case float64:
		if v != 0 {
			parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
		}
	case fmt.Stringer:
		parts = appendInput(parts, v.String())
	}
	return parts
}
