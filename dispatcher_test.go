package jsonval

import (
	"encoding/json"
	"testing"
	"time"
)

func mustValidate(t *testing.T, schema, data any) []Error {
	t.Helper()
	v := New()
	if _, err := v.Schema(schema); err != nil {
		t.Fatalf("Schema: %v", err)
	}
	errs, err := v.Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return errs
}

func TestObjectRequiredAndMinimum(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"age"},
		"properties": map[string]any{
			"age": map[string]any{"type": "integer", "minimum": json.Number("0")},
		},
	}
	errs := mustValidate(t, schema, map[string]any{"age": json.Number("-5")})
	if len(errs) != 1 || errs[0].Path != "/age" {
		t.Fatalf("got %v", errs)
	}

	errs = mustValidate(t, schema, map[string]any{})
	if len(errs) != 1 || errs[0].Message != "Missing property." {
		t.Fatalf("got %v", errs)
	}
}

func TestArrayUniqueItems(t *testing.T) {
	schema := map[string]any{
		"type":        "array",
		"uniqueItems": true,
	}
	errs := mustValidate(t, schema, []any{json.Number("1"), json.Number("1.0")})
	if len(errs) != 1 || errs[0].Message != "Unique items required." {
		t.Fatalf("got %v", errs)
	}
}

func TestOneOfTypeMismatchAggregation(t *testing.T) {
	schema := map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	}
	errs := mustValidate(t, schema, true)
	if len(errs) != 1 {
		t.Fatalf("want one aggregated error, got %v", errs)
	}
	want := "Expected string, integer - got boolean."
	if errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestAdditionalPropertiesForbidden(t *testing.T) {
	schema := map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"a": map[string]any{"type": "string"}},
		"additionalProperties": false,
	}
	errs := mustValidate(t, schema, map[string]any{"a": "ok", "b": json.Number("1"), "c": true})
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	want := "Properties not allowed: b, c."
	if errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestCyclicRefTerminates(t *testing.T) {
	schema := map[string]any{
		"id": "http://example.com/tree",
		"definitions": map[string]any{
			"node": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"children": map[string]any{
						"type":  "array",
						"items": map[string]any{"$ref": "#/definitions/node"},
					},
				},
			},
		},
		"$ref": "#/definitions/node",
	}
	data := map[string]any{
		"children": []any{
			map[string]any{"children": []any{}},
		},
	}
	type result struct {
		errs []Error
		err  error
	}
	done := make(chan result, 1)
	go func() {
		v := New()
		if _, err := v.Schema(schema); err != nil {
			done <- result{err: err}
			return
		}
		errs, err := v.Validate(data)
		done <- result{errs: errs, err: err}
	}()
	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("Schema/Validate: %v", r.err)
		}
		if len(r.errs) != 0 {
			t.Fatalf("got %v", r.errs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cyclic schema resolution did not terminate")
	}
}

func TestFormatEmailMismatch(t *testing.T) {
	schema := map[string]any{"type": "string", "format": "email"}
	errs := mustValidate(t, schema, "not-an-email")
	if len(errs) != 1 || errs[0].Message != "Does not match email format." {
		t.Fatalf("got %v", errs)
	}
}
