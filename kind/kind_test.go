package kind_test

import (
	"encoding/json"
	"testing"

	"github.com/kelidra/jsonval/kind"
)

func TestOf(t *testing.T) {
	tests := []struct {
		v    any
		want kind.Kind
	}{
		{nil, kind.Null},
		{true, kind.Boolean},
		{"x", kind.String},
		{[]any{}, kind.Array},
		{map[string]any{}, kind.Object},
		{json.Number("1"), kind.Integer},
		{json.Number("1.0"), kind.Number},
		{json.Number("1.5"), kind.Number},
		{float64(2), kind.Integer},
		{float64(2.5), kind.Number},
	}
	for _, tc := range tests {
		if got := kind.Of(tc.v); got != tc.want {
			t.Errorf("Of(%#v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !kind.IsNumeric(kind.Integer) || !kind.IsNumeric(kind.Number) {
		t.Error("Integer and Number should both be numeric")
	}
	if kind.IsNumeric(kind.String) {
		t.Error("String should not be numeric")
	}
}
