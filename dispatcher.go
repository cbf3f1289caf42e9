package jsonval

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kelidra/jsonval/kind"
	"github.com/kelidra/jsonval/msg"
)

// typeValidator is implemented by each Draft 4 primitive type. It
// receives the already-resolved schema node and returns the errors found
// plus, when coercion rewrote the value, the coerced replacement (equal
// to data when nothing changed).
type typeValidator func(cfg *Config, data any, path string, schema map[string]any) ([]Error, any)

var typeValidators map[string]typeValidator

func init() {
	typeValidators = map[string]typeValidator{
		"null":    validateNull,
		"boolean": validateBoolean,
		"integer": validateInteger,
		"number":  validateNumber,
		"string":  validateString,
		"array":   validateArray,
		"object":  validateObject,
		"any":     validateAny,
		"file":    validateAny,
	}
}

// validateSchema is the keyword dispatcher: given data, its path, and a
// schema node (already $ref-free), it returns the ordered list of
// validation errors and the value coercion (if any) settled on by the
// type dispatch.
func validateSchema(cfg *Config, data any, path string, schema any) ([]Error, any) {
	obj, ok := asObject(schema)
	if !ok {
		return nil, data // no schema (or malformed) constrains nothing
	}

	var errs []Error

	if enumVals, ok := obj["enum"].([]any); ok {
		if !enumContains(enumVals, data) {
			errs = append(errs, newError(path, msg.NotInEnum{Values: enumStrings(enumVals)}))
		}
	}

	typeErrs, coerced := dispatchType(cfg, data, path, obj)
	errs = append(errs, typeErrs...)
	data = coerced

	if allOf, ok := obj["allOf"].([]any); ok {
		for _, sub := range allOf {
			subErrs, subCoerced := validateSchema(cfg, data, path, sub)
			errs = append(errs, subErrs...)
			data = subCoerced
		}
	}

	if anyOf, ok := obj["anyOf"].([]any); ok {
		buckets := make([][]Error, len(anyOf))
		anyEmpty := false
		for i, sub := range anyOf {
			subErrs, _ := validateSchema(cfg, data, path, sub)
			buckets[i] = subErrs
			if len(subErrs) == 0 {
				anyEmpty = true
			}
		}
		if !anyEmpty {
			errs = append(errs, aggregateBuckets(buckets)...)
		}
	}

	if oneOf, ok := obj["oneOf"].([]any); ok {
		buckets := make([][]Error, len(oneOf))
		matched := 0
		for i, sub := range oneOf {
			subErrs, _ := validateSchema(cfg, data, path, sub)
			buckets[i] = subErrs
			if len(subErrs) == 0 {
				matched++
			}
		}
		switch {
		case matched == 0:
			errs = append(errs, aggregateBuckets(buckets)...)
		case matched > 1:
			errs = append(errs, newError(path, msg.OneOfMultipleMatched{}))
		}
	}

	if notSchema, ok := obj["not"]; ok {
		innerErrs, _ := validateSchema(cfg, data, path, notSchema)
		if len(innerErrs) == 0 {
			errs = append(errs, newError(path, msg.NotMatched{}))
		}
	}

	return errs, data
}

// dispatchType implements §4.3's type selection. An explicit type wins.
// Without one, a schema carrying allOf, anyOf or oneOf runs the
// validator for data's own runtime kind (the composite keywords are
// applied separately by validateSchema); otherwise "properties" implies
// object, and failing that the runtime-kind validator runs again, so
// every kind of value is accepted while kind-specific keywords still
// apply. A list-valued type behaves like an implicit anyOf over the
// candidate types, using the same bucket-aggregation rule as the
// composite keywords.
func dispatchType(cfg *Config, data any, path string, schema map[string]any) ([]Error, any) {
	switch t := schema["type"].(type) {
	case string:
		return runType(cfg, data, path, schema, t)
	case []any:
		names := toStringSlice(t)
		buckets := make([][]Error, len(names))
		coerced := data
		anyEmpty := false
		for i, name := range names {
			b, c := runType(cfg, data, path, schema, name)
			buckets[i] = b
			if len(b) == 0 {
				anyEmpty = true
				coerced = c
			}
		}
		if anyEmpty {
			return nil, coerced
		}
		return aggregateBuckets(buckets), data
	}

	if _, ok := schema["allOf"]; ok {
		return runType(cfg, data, path, schema, runtimeTypeName(data))
	}
	if _, ok := schema["anyOf"]; ok {
		return runType(cfg, data, path, schema, runtimeTypeName(data))
	}
	if _, ok := schema["oneOf"]; ok {
		return runType(cfg, data, path, schema, runtimeTypeName(data))
	}
	if _, ok := schema["properties"]; ok {
		return runType(cfg, data, path, schema, "object")
	}
	return runType(cfg, data, path, schema, runtimeTypeName(data))
}

// runtimeTypeName maps data's own kind to a type validator name, used
// whenever a schema has no explicit or implied type: keywords like
// minimum or pattern still apply to a value of the matching kind even
// when the schema never says "type", matching Draft 4's per-keyword
// (rather than per-type) applicability.
func runtimeTypeName(data any) string {
	return kind.Of(data).String()
}

func runType(cfg *Config, data any, path string, schema map[string]any, name string) ([]Error, any) {
	fn, ok := typeValidators[name]
	if !ok {
		return []Error{newError(path, msg.UnknownType{Name: name})}, data
	}
	return fn(cfg, data, path, schema)
}

func toStringSlice(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func enumContains(vals []any, data any) bool {
	for _, v := range vals {
		if canonicalEqual(v, data) {
			return true
		}
	}
	return false
}

func enumStrings(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = describeValue(v)
	}
	return out
}

// typeMismatch builds the "Expected T - got U." error shared by every
// type validator's kind check.
func typeMismatch(path string, want string, data any) Error {
	return newError(path, msg.TypeMismatch{Want: []string{want}, Got: kind.Of(data).String()})
}

var expectedGotPattern = regexp.MustCompile(`^Expected (.+) - got (.+)\.$`)

// aggregateBuckets implements the error-aggregation rule from §4.3: group
// by path, dedup by message within a path, and coalesce sibling
// "Expected X - got Y." errors into one "Expected X1, X2 - got Y."
// message; anything else is emitted per-alternative, prefixed by index.
func aggregateBuckets(buckets [][]Error) []Error {
	type tagged struct {
		alt int
		e   Error
	}
	var all []tagged
	for i, b := range buckets {
		for _, e := range b {
			all = append(all, tagged{i, e})
		}
	}
	if len(all) == 0 {
		return nil
	}

	var order []string
	grouped := map[string][]tagged{}
	for _, t := range all {
		if _, ok := grouped[t.e.Path]; !ok {
			order = append(order, t.e.Path)
		}
		grouped[t.e.Path] = append(grouped[t.e.Path], t)
	}

	var out []Error
	for _, path := range order {
		group := grouped[path]
		seen := map[string]bool{}
		var deduped []tagged
		for _, t := range group {
			if seen[t.e.Message] {
				continue
			}
			seen[t.e.Message] = true
			deduped = append(deduped, t)
		}

		wants := make([]string, 0, len(deduped))
		var got string
		allExpectedGot := true
		for _, t := range deduped {
			m := expectedGotPattern.FindStringSubmatch(t.e.Message)
			if m == nil {
				allExpectedGot = false
				break
			}
			wants = append(wants, m[1])
			got = m[2]
		}

		if allExpectedGot {
			out = append(out, Error{
				Path:    path,
				Message: fmt.Sprintf("Expected %s - got %s.", strings.Join(wants, ", "), got),
			})
			continue
		}
		for _, t := range deduped {
			out = append(out, Error{Path: path, Message: fmt.Sprintf("[%d] %s", t.alt, t.e.Message)})
		}
	}
	return out
}

// describeValue renders a Json value for inclusion in a "Not in enum
// list" message.
func describeValue(v any) string {
	switch k := kind.Of(v); k {
	case kind.String:
		return fmt.Sprintf("%q", v.(string))
	case kind.Null:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}
