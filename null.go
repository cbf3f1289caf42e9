package jsonval

import "github.com/kelidra/jsonval/kind"

func validateNull(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	if kind.Of(data) != kind.Null {
		return []Error{typeMismatch(path, "null", data)}, data
	}
	return nil, data
}
