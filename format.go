package jsonval

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	gourl "net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kelidra/jsonval/formats"
	"github.com/kelidra/jsonval/kind"
)

// formatFunc is a format predicate: given the raw decoded value (always
// a string, except for int32/int64/float/double which see the numeric
// value), it reports whether the value satisfies the format. Values of
// the wrong kind are considered vacuously valid; format only
// constrains values that are already the kind it applies to, matching
// the rest of the Draft 4 keyword vocabulary.
type formatFunc func(v any) bool

var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

func defaultFormats() map[string]formatFunc {
	return map[string]formatFunc{
		"byte":      formatByte,
		"date":      formatDate,
		"date-time": formatDateTime,
		"email":     formatEmail,
		"hostname":  formatHostnameLax,
		"ipv4":      formatIPv4,
		"ipv6":      formatIPv6Lax,
		"uri":       formatURI,
		"int32":     formatInt32,
		"int64":     formatInt64,
		"float":     formatNumeric,
		"double":    formatNumeric,
		"regex":     formatRegex,
		"uuid":      formatUUID,
	}
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func formatByte(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil && base64Alphabet.MatchString(s)
}

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func formatDate(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	if !dateShape.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func formatDateTime(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// formatEmail is a pragmatic approximation of RFC 5322's addr-spec: a
// dot-atom or quoted-string local part, '@', and a dot-atom domain or
// bracketed IP literal. It is intentionally lax (see spec non-goals:
// "strict RFC validation of every format" is out of scope).
func formatEmail(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if strings.HasPrefix(local, `"`) && strings.HasSuffix(local, `"`) && len(local) > 1 {
		inner := local[1 : len(local)-1]
		if strings.ContainsAny(inner, `\"`) {
			return false
		}
	} else {
		if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
			return false
		}
		for _, ch := range local {
			switch {
			case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			case strings.ContainsRune(".!#$%&'*+-/=?^_`{|}~", ch):
			default:
				return false
			}
		}
	}
	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		inner := domain[1 : len(domain)-1]
		if rest, ok := strings.CutPrefix(inner, "IPv6:"); ok {
			return formats.IPv6(rest)
		}
		return formatIPv4(inner)
	}
	return formats.Hostname(domain)
}

// formatHostnameLax never fails: hostnames are not checked and a warning
// is printed instead of an error, unless strict formats are installed
// (see strictFormats below and WithStrictFormats in config.go).
func formatHostnameLax(v any) bool {
	if s, ok := stringValue(v); ok {
		warnf(nil, "hostname %q not checked: strict formats are not installed", s)
	}
	return true
}

func formatIPv4(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 || (len(p) > 1 && p[0] == '0') {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func formatIPv6Lax(v any) bool {
	// lax default, see formatHostnameLax.
	if s, ok := stringValue(v); ok {
		warnf(nil, "ipv6 %q not checked: strict formats are not installed", s)
	}
	return true
}

func formatURI(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	_, err := gourl.Parse(s)
	return err == nil
}

func formatInt32(v any) bool {
	f, ok := asFloat(v)
	if !ok {
		return true
	}
	return f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32
}

func formatInt64(v any) bool {
	f, ok := asFloat(v)
	if !ok {
		return true
	}
	return f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64
}

func formatNumeric(v any) bool {
	_, ok := asFloat(v)
	return ok || !kind.IsNumeric(kind.Of(v))
}

func formatRegex(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	_, err := regexp.Compile(s)
	return err == nil
}

func formatUUID(v any) bool {
	s, ok := stringValue(v)
	if !ok {
		return true
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// asFloat extracts a float64 from a decoded JSON number (json.Number or
// float64), reporting false for non-numeric values.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// strictFormats swaps the lax hostname/ipv6 defaults for RFC-strict
// predicates from the formats package.
func strictFormats(table map[string]formatFunc) {
	table["hostname"] = func(v any) bool {
		s, ok := stringValue(v)
		if !ok {
			return true
		}
		return formats.Hostname(s)
	}
	table["ipv6"] = func(v any) bool {
		s, ok := stringValue(v)
		if !ok {
			return true
		}
		return formats.IPv6(s)
	}
}

var errUnknownFormat = errors.New("format not installed")

func lookupFormat(table map[string]formatFunc, name string) (formatFunc, error) {
	fn, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, errUnknownFormat)
	}
	return fn, nil
}
