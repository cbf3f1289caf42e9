// Package formats provides the optional, RFC-strict "hostname" and
// "ipv6" format predicates. The core format table (see the root package)
// treats these two formats as lax by default and never fails, per spec:
// callers who want strict checking install these callbacks explicitly.
package formats

import (
	"net"
	"strings"
)

// Hostname reports whether s is a syntactically valid DNS hostname per
// https://en.wikipedia.org/wiki/Hostname#Restrictions_on_valid_host_names.
func Hostname(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) < 1 || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
			case c == '-':
			default:
				return false
			}
		}
	}
	return true
}

// IPv6 reports whether s is a valid IPv6 address, rejecting zone IDs and
// anything that parses as IPv4.
func IPv6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil
}
