package jsonval

import (
	"strconv"
	"strings"

	"github.com/kelidra/jsonval/msg"
)

func validateArray(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	arr, ok := asArray(data)
	if !ok {
		if coerced, did := coerceToArray(data, schema); did {
			arr = coerced
			data = coerced
		} else {
			return []Error{typeMismatch(path, "array", data)}, data
		}
	}

	var errs []Error

	if min, ok := asInt(schema["minItems"]); ok && len(arr) < min {
		errs = append(errs, newError(path, msg.ItemCount{TooMany: false, Count: len(arr), Bound: min}))
	}
	if max, ok := asInt(schema["maxItems"]); ok && len(arr) > max {
		errs = append(errs, newError(path, msg.ItemCount{TooMany: true, Count: len(arr), Bound: max}))
	}
	if unique, ok := schema["uniqueItems"].(bool); ok && unique {
		if hasDuplicate(arr) {
			errs = append(errs, newError(path, msg.UniqueItemsRequired{}))
		}
	}

	out := make([]any, len(arr))
	copy(out, arr)

	switch items := schema["items"].(type) {
	case []any:
		additional := schema["additionalItems"]
		for i := range out {
			var itemSchema any
			switch {
			case i < len(items):
				itemSchema = items[i]
			case len(items) > 0 && !isAdditionalItemsFalse(additional):
				if sub, ok := asObject(additional); ok {
					itemSchema = sub
				} else {
					itemSchema = items[len(items)-1]
				}
			default:
				continue
			}
			childErrs, coerced := validateSchema(cfg, out[i], appendPath(path, strconv.Itoa(i)), itemSchema)
			errs = append(errs, childErrs...)
			out[i] = coerced
		}
		if isAdditionalItemsFalse(additional) && len(out) > len(items) {
			errs = append(errs, newError(path, msg.ItemCount{TooMany: true, Count: len(out), Bound: len(items)}))
		}
	case map[string]any:
		for i := range out {
			childErrs, coerced := validateSchema(cfg, out[i], appendPath(path, strconv.Itoa(i)), items)
			errs = append(errs, childErrs...)
			out[i] = coerced
		}
	}

	return errs, out
}

func isAdditionalItemsFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}

// coerceToArray implements the collectionFormat coercion: when items is
// a single schema carrying collectionFormat, a string data value is
// split into an array on the format's separator before item validation.
func coerceToArray(data any, schema map[string]any) ([]any, bool) {
	itemsSchema, ok := asObject(schema["items"])
	if !ok {
		return nil, false
	}
	format, ok := itemsSchema["collectionFormat"].(string)
	if !ok {
		return nil, false
	}
	s, ok := data.(string)
	if !ok {
		return nil, false
	}

	var sep string
	switch format {
	case "csv":
		sep = ","
	case "ssv":
		sep = " "
	case "tsv":
		sep = "\t"
	case "pipes":
		sep = "|"
	default:
		return nil, false
	}

	parts := strings.Split(s, sep)
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out, true
}

func hasDuplicate(arr []any) bool {
	seen := make(map[string]bool, len(arr))
	for _, v := range arr {
		h := canonicalHash(v)
		if seen[h] {
			return true
		}
		seen[h] = true
	}
	return false
}
