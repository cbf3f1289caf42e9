package jsonval

import (
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"github.com/kelidra/jsonval/msg"
)

func validateString(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	s, ok := data.(string)
	if !ok {
		if cfg.Coerce {
			if coerced, ok := coerceToString(data); ok {
				return stringChecks(cfg, coerced, path, schema), coerced
			}
		}
		return []Error{typeMismatch(path, "string", data)}, data
	}
	return stringChecks(cfg, s, path, schema), s
}

func stringChecks(cfg *Config, s string, path string, schema map[string]any) []Error {
	var errs []Error

	if name, ok := schema["format"].(string); ok {
		if fn, err := lookupFormat(cfg.formats, name); err == nil {
			if !fn(s) {
				errs = append(errs, newError(path, msg.FormatMismatch{Format: name}))
			}
		} else if cfg.WarnOnMissingFormat {
			warnf(cfg, "unknown format %q at %s", name, path)
		}
	}

	length := utf8.RuneCountInString(s)
	if min, ok := asInt(schema["minLength"]); ok && length < min {
		errs = append(errs, newError(path, msg.StringLength{Long: false, Length: length, Bound: min}))
	}
	if max, ok := asInt(schema["maxLength"]); ok && length > max {
		errs = append(errs, newError(path, msg.StringLength{Long: true, Length: length, Bound: max}))
	}

	if pattern, ok := schema["pattern"].(string); ok {
		re, err := cfg.regexEngine.Compile(pattern)
		if err == nil && !re.MatchString(s) {
			errs = append(errs, newError(path, msg.PatternMismatch{Pattern: pattern}))
		}
	}

	return errs
}

// coerceToString implements the opt-in number/boolean->string direction
// of §4.5's coercion: any scalar that has an unambiguous textual
// rendering becomes that string.
func coerceToString(data any) (string, bool) {
	switch v := data.(type) {
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}
