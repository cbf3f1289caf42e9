package jsonval

import (
	"encoding/json"
	"testing"
)

func TestCanonicalEqualNumericUnification(t *testing.T) {
	if !canonicalEqual(json.Number("1"), json.Number("1.0")) {
		t.Error("integer 1 and number 1.0 should canonicalize equal")
	}
	if canonicalEqual(json.Number("1"), "1") {
		t.Error("number 1 and string \"1\" must not canonicalize equal")
	}
}

func TestCanonicalEqualObjectsIgnoreKeyOrder(t *testing.T) {
	a := map[string]any{"x": json.Number("1"), "y": json.Number("2")}
	b := map[string]any{"y": json.Number("2"), "x": json.Number("1")}
	if !canonicalEqual(a, b) {
		t.Error("objects with the same members in different key order should canonicalize equal")
	}
}

func TestCanonicalEqualArraysRespectOrder(t *testing.T) {
	a := []any{json.Number("1"), json.Number("2")}
	b := []any{json.Number("2"), json.Number("1")}
	if canonicalEqual(a, b) {
		t.Error("arrays with the same elements in a different order must not canonicalize equal")
	}
}

func TestCanonicalEqualStringNFC(t *testing.T) {
	// "é" as a single code point vs as e + combining acute accent.
	precomposed := "é"
	decomposed := "é"
	if !canonicalEqual(precomposed, decomposed) {
		t.Error("NFC-equivalent strings should canonicalize equal")
	}
}
