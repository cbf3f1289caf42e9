package jsonval

// validateAny backs the explicit "any" type and the Draft 4 "file" type,
// which this validator treats as an opaque value: accepts everything.
func validateAny(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	return nil, data
}
