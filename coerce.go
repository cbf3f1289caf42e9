package jsonval

// CoerceAndValidate runs the same dispatch as Validate but additionally
// returns the coerced value settled on along the way. The object and
// array validators build copies of their containers, so the caller's
// data is never modified: coerced values and injected defaults, at any
// depth, are visible only through the replacement value returned here.
// This is that distinct API.
func (v *Validator) CoerceAndValidate(data any) ([]Error, any, error) {
	schema, err := v.resolvedSchema()
	if err != nil {
		return nil, data, err
	}
	errs, coerced := validateSchema(&v.cfg, data, "/", schema)
	return errs, coerced, nil
}
