package jsonval

import "github.com/kelidra/jsonval/kind"

func validateBoolean(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	if kind.Of(data) == kind.Boolean {
		return nil, data
	}
	return []Error{typeMismatch(path, "boolean", data)}, data
}
