package jsonval

import "testing"

func TestAllOfRequiresEverySubschema(t *testing.T) {
	schema := map[string]any{
		"allOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"minLength": 3},
		},
	}
	if errs := mustValidate(t, schema, "ab"); len(errs) == 0 {
		t.Fatal("want a minLength violation")
	}
	if errs := mustValidate(t, schema, "abc"); len(errs) != 0 {
		t.Fatalf("got %v", errs)
	}
}

func TestAnyOfSucceedsOnFirstMatch(t *testing.T) {
	schema := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	}
	if errs := mustValidate(t, schema, "x"); len(errs) != 0 {
		t.Fatalf("got %v", errs)
	}
	if errs := mustValidate(t, schema, true); len(errs) == 0 {
		t.Fatal("want an aggregated error for a value matching neither branch")
	}
}

func TestNotRejectsMatchingSubschema(t *testing.T) {
	schema := map[string]any{"not": map[string]any{"type": "string"}}
	if errs := mustValidate(t, schema, "x"); len(errs) != 1 || errs[0].Message != "Should not match." {
		t.Fatalf("got %v", errs)
	}
	if errs := mustValidate(t, schema, 1); len(errs) != 0 {
		t.Fatalf("got %v", errs)
	}
}

func TestOneOfBothMatchIsAnError(t *testing.T) {
	schema := map[string]any{
		"oneOf": []any{
			map[string]any{"minimum": 0},
			map[string]any{"maximum": 100},
		},
	}
	errs := mustValidate(t, schema, 50)
	if len(errs) != 1 || errs[0].Message != "Expected only one to match." {
		t.Fatalf("got %v", errs)
	}
}

func TestEnumRejectsValueNotInList(t *testing.T) {
	schema := map[string]any{"enum": []any{"a", "b", "c"}}
	if errs := mustValidate(t, schema, "a"); len(errs) != 0 {
		t.Fatalf("got %v", errs)
	}
	if errs := mustValidate(t, schema, "z"); len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
}
