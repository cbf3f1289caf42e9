package jsonval

import (
	"github.com/kelidra/jsonval/msg"
)

var documentaryKeys = map[string]bool{"description": true, "id": true, "title": true}

func validateObject(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	obj, ok := asObject(data)
	if !ok {
		return []Error{typeMismatch(path, "object", data)}, data
	}

	var errs []Error

	if min, ok := asInt(schema["minProperties"]); ok && len(obj) < min {
		errs = append(errs, newError(path, msg.PropertyCount{TooMany: false, Count: len(obj), Bound: min}))
	}
	if max, ok := asInt(schema["maxProperties"]); ok && len(obj) > max {
		errs = append(errs, newError(path, msg.PropertyCount{TooMany: true, Count: len(obj), Bound: max}))
	}

	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	remaining := make(map[string]bool, len(obj))
	for k := range obj {
		remaining[k] = true
	}

	requiredSet := map[string]bool{}
	if req, ok := schema["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				requiredSet[s] = true
			}
		}
	}

	if properties, ok := asObject(schema["properties"]); ok {
		for _, name := range sortedKeys(properties) {
			childSchema := properties[name]
			childPath := appendPath(path, name)
			if v, present := obj[name]; present {
				childErrs, coerced := validateSchema(cfg, v, childPath, childSchema)
				errs = append(errs, childErrs...)
				out[name] = coerced
				delete(remaining, name)
				continue
			}
			childObj, _ := asObject(childSchema)
			if def, hasDefault := childObj["default"]; hasDefault {
				out[name] = def
				continue
			}
			if requiredSet[name] || isDraft3Required(childObj) {
				errs = append(errs, newError(childPath, msg.MissingProperty{}))
			}
		}
	}

	if patternProps, ok := asObject(schema["patternProperties"]); ok {
		for _, pattern := range sortedKeys(patternProps) {
			childSchema := patternProps[pattern]
			re, err := cfg.regexEngine.Compile(pattern)
			if err != nil {
				continue
			}
			for _, name := range sortedKeys(obj) {
				if !remaining[name] || !re.MatchString(name) {
					continue
				}
				childErrs, coerced := validateSchema(cfg, obj[name], appendPath(path, name), childSchema)
				errs = append(errs, childErrs...)
				out[name] = coerced
				delete(remaining, name)
			}
		}
	}

	leftover := make([]string, 0, len(remaining))
	for _, name := range sortedKeys(obj) {
		if remaining[name] && !documentaryKeys[name] {
			leftover = append(leftover, name)
		}
	}

	switch additional := schema["additionalProperties"].(type) {
	case bool:
		if !additional && len(leftover) > 0 {
			errs = append(errs, newError(path, msg.PropertiesNotAllowed{Names: leftover}))
		}
	case map[string]any:
		for _, name := range leftover {
			childErrs, coerced := validateSchema(cfg, obj[name], appendPath(path, name), additional)
			errs = append(errs, childErrs...)
			out[name] = coerced
		}
	}

	return errs, out
}

// isDraft3Required reports the Draft 3 legacy accommodation: a
// property's own schema declaring a truthy top-level "required" flag,
// distinct from Draft 4's sibling "required" array.
func isDraft3Required(childSchema map[string]any) bool {
	if childSchema == nil {
		return false
	}
	b, _ := childSchema["required"].(bool)
	return b
}
