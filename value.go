package jsonval

import (
	"sort"
	"strings"
)

// escapeToken escapes a single JSON pointer reference token per RFC 6901:
// '~' becomes '~0' and '/' becomes '~1'.
func escapeToken(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	r := strings.NewReplacer("~", "~0", "/", "~1")
	return r.Replace(tok)
}

// appendPath builds a child JSON pointer from a parent pointer and an
// unescaped segment name (an object key or array index). The root path
// is "/".
func appendPath(parent, segment string) string {
	if parent == "/" {
		return "/" + escapeToken(segment)
	}
	return parent + "/" + escapeToken(segment)
}

// asObject returns v as a JSON object (map[string]any) and whether it is
// one.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asArray returns v as a JSON array ([]any) and whether it is one.
func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// sortedKeys returns m's keys in lexical order. Go's map iteration order
// is randomized per process, so every place that needs a reproducible
// object traversal (property validation in object.go, the canonical
// hasher, the resolver's walk) goes through this instead of ranging
// over the map directly.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
