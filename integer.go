package jsonval

import (
	"github.com/kelidra/jsonval/kind"
)

// validateInteger delegates to the same bound checks as number, then
// additionally fails when the value's shape isn't integral: integer is
// number with the extra constraint that its literal form has no
// fraction, so both errors are reported together rather than one
// masking the other.
func validateInteger(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	if k := kind.Of(data); k == kind.Integer || k == kind.Number {
		f, _ := asFloat(data)
		errs := numericBounds(cfg, data, path, schema, f)
		if k != kind.Integer {
			errs = append(errs, typeMismatch(path, "integer", data))
		}
		return errs, data
	}
	if cfg.Coerce {
		if coerced, ok := coerceToNumber(data); ok {
			ck := kind.Of(coerced)
			f, _ := asFloat(coerced)
			errs := numericBounds(cfg, coerced, path, schema, f)
			if ck != kind.Integer {
				errs = append(errs, typeMismatch(path, "integer", data))
			}
			return errs, coerced
		}
	}
	return []Error{typeMismatch(path, "integer", data)}, data
}
