package jsonval

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/kelidra/jsonval/msg"
)

// numericBounds applies the keywords shared by integer and number:
// format, minimum/exclusiveMinimum, maximum/exclusiveMaximum and
// multipleOf. f is the already-extracted float64 value of data.
func numericBounds(cfg *Config, data any, path string, schema map[string]any, f float64) []Error {
	var errs []Error

	if name, ok := schema["format"].(string); ok {
		if fn, err := lookupFormat(cfg.formats, name); err == nil {
			if !fn(data) {
				errs = append(errs, newError(path, msg.FormatMismatch{Format: name}))
			}
		} else if cfg.WarnOnMissingFormat {
			warnf(cfg, "unknown format %q at %s", name, path)
		}
	}

	if min, ok := asSchemaFloat(schema["minimum"]); ok {
		exclusive, _ := schema["exclusiveMinimum"].(bool)
		if f < min || (exclusive && f == min) {
			errs = append(errs, newError(path, msg.Minimum{
				Value: formatNumber(f), Bound: formatNumber(min), Exclusive: exclusive,
			}))
		}
	}
	if max, ok := asSchemaFloat(schema["maximum"]); ok {
		exclusive, _ := schema["exclusiveMaximum"].(bool)
		if f > max || (exclusive && f == max) {
			errs = append(errs, newError(path, msg.Maximum{
				Value: formatNumber(f), Bound: formatNumber(max), Exclusive: exclusive,
			}))
		}
	}
	if div, ok := asSchemaFloat(schema["multipleOf"]); ok && div != 0 {
		quotient := f / div
		if math.Abs(quotient-math.Round(quotient)) > 1e-9 {
			errs = append(errs, newError(path, msg.NotMultipleOf{Divisor: formatNumber(div)}))
		}
	}
	return errs
}

func asSchemaFloat(v any) (float64, bool) {
	return asFloat(v)
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// coerceToNumber implements the opt-in string->number coercion: a
// string containing a valid JSON number literal becomes a json.Number,
// leaving everything else untouched.
func coerceToNumber(data any) (any, bool) {
	s, ok := data.(string)
	if !ok {
		return data, false
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return data, false
	}
	return json.Number(s), true
}
