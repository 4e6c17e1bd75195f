package data

import (
	"sort"
	"strings"
)

// Context is the mapping of substitution values handed to a renderer. Any key
// present in the source YAML becomes available to template expressions; no
// schema is enforced.
type Context map[string]any

// Keys returns the sorted top-level keys of the context.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a top-level key is present.
func (c Context) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Merge returns a new context with overlay's entries applied over c. Neither
// input is mutated. Useful for injecting computed values alongside the
// YAML-sourced ones.
func (c Context) Merge(overlay Context) Context {
	merged := make(Context, len(c)+len(overlay))
	for key, value := range c {
		merged[key] = value
	}
	for key, value := range overlay {
		merged[key] = value
	}
	return merged
}

// Normalize walks the context and trims trailing newlines from every string
// value, including strings nested inside maps and slices. Block scalars in
// YAML routinely carry a trailing newline that would otherwise leak into the
// rendered document.
func (c Context) Normalize() Context {
	out := make(Context, len(c))
	for key, value := range c {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return strings.TrimRight(v, "\n")
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}
