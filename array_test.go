package jsonval

import "testing"

func TestArrayTupleAdditionalItemsFalse(t *testing.T) {
	schema := map[string]any{
		"type": "array",
		"items": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
		"additionalItems": false,
	}
	if errs := mustValidate(t, schema, []any{"a", 1}); len(errs) != 0 {
		t.Fatalf("exact tuple length should validate: %v", errs)
	}
	errs := mustValidate(t, schema, []any{"a", 1, "extra"})
	if len(errs) != 1 {
		t.Fatalf("want one length-mismatch error, got %v", errs)
	}
}

func TestArrayTupleAdditionalItemsRepeatsLastSchema(t *testing.T) {
	schema := map[string]any{
		"type": "array",
		"items": []any{
			map[string]any{"type": "string"},
		},
	}
	// additionalItems absent (defaults true): elements past the tuple
	// reuse the last declared item schema, so a non-string extra fails.
	errs := mustValidate(t, schema, []any{"a", 2})
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
}

func TestArraySingleSchemaAppliesToEveryElement(t *testing.T) {
	schema := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	}
	errs := mustValidate(t, schema, []any{1, "two", 3})
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
}

func TestArrayCollectionFormatCSV(t *testing.T) {
	schema := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":             "string",
			"collectionFormat": "csv",
		},
	}
	errs := mustValidate(t, schema, "a,b,c")
	if len(errs) != 0 {
		t.Fatalf("csv collectionFormat should coerce a string into an array: %v", errs)
	}
}
