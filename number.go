package jsonval

import "github.com/kelidra/jsonval/kind"

// validateNumber accepts both Integer and Number kinds: JSON Schema
// treats integer values as a subset of number, so 1 satisfies
// {"type": "number"} just as 1.5 does.
func validateNumber(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	if k := kind.Of(data); k == kind.Integer || k == kind.Number {
		f, _ := asFloat(data)
		return numericBounds(cfg, data, path, schema, f), data
	}
	if cfg.Coerce {
		if coerced, ok := coerceToNumber(data); ok {
			f, _ := asFloat(coerced)
			return numericBounds(cfg, coerced, path, schema, f), coerced
		}
	}
	return []Error{typeMismatch(path, "number", data)}, data
}
