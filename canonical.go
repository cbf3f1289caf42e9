package jsonval

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kelidra/jsonval/kind"
)

// canonicalHash produces a stable fingerprint for any Json value, used by
// enum (member equality) and uniqueItems. Two values hash equal iff they
// are structurally equal as Json: same kind (integer and number count as
// one kind), same scalar content, same array elements in order, same
// object members regardless of order.
//
// Values of different kinds never collide because the kind tag is
// written into the digest input ahead of the value itself (numbers and
// strings carry distinct single-byte tags, so "1" and 1 hash differently
// even though their textual forms overlap). Strings and object keys are
// written quoted, so their content cannot be mistaken for separators.
func canonicalHash(v any) string {
	var b strings.Builder
	writeCanonical(&b, v)
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func canonicalEqual(a, b any) bool {
	return canonicalHash(a) == canonicalHash(b)
}

func writeCanonical(b *strings.Builder, v any) {
	k := kind.Of(v)
	// Integer and Number are the same JSON value kind for equality
	// purposes (1 == 1.0); only the schema-level type check cares about
	// the distinction, so both tag as Number here.
	tag := k
	if tag == kind.Integer {
		tag = kind.Number
	}
	b.WriteByte(byte(tag))
	switch k {
	case kind.Null:
	case kind.Boolean:
		if v.(bool) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case kind.Integer, kind.Number:
		b.WriteString(numericLiteral(v))
	case kind.String:
		b.WriteString(strconv.Quote(norm.NFC.String(v.(string))))
	case kind.Array:
		arr, _ := asArray(v)
		b.WriteByte('[')
		for i, item := range arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, item)
		}
		b.WriteByte(']')
	case kind.Object:
		obj, _ := asObject(v)
		keys := sortedKeys(obj)
		b.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(norm.NFC.String(key)))
			b.WriteByte(':')
			writeCanonical(b, obj[key])
		}
		b.WriteByte('}')
	default:
		b.WriteString("?")
	}
}

// numericLiteral renders a decoded number in a normal form so that 1,
// 1.0 and json.Number("1.00") all canonicalize identically.
func numericLiteral(v any) string {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return string(n)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return ""
	}
}
