package jsonval

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// RegexpHandle is a single compiled pattern, matched unanchored per the
// `pattern` keyword's semantics.
type RegexpHandle interface {
	MatchString(s string) bool
	String() string
}

// RegexEngine compiles pattern strings. Draft 4's `pattern` keyword is
// specified against ECMA 262 syntax, which Go's RE2-based regexp package
// does not fully implement (no backreferences or lookaround); the
// default engine therefore delegates to dlclark/regexp2 in ECMAScript
// mode. A caller whose schemas are known RE2-compatible can install the
// faster stdlib engine with WithRegexEngine(StdlibRegexEngine{}).
type RegexEngine interface {
	Compile(pattern string) (RegexpHandle, error)
}

type defaultRegexEngine struct{}

func (defaultRegexEngine) Compile(pattern string) (RegexpHandle, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	return regexp2Handle{re}, nil
}

type regexp2Handle struct{ re *regexp2.Regexp }

func (h regexp2Handle) MatchString(s string) bool {
	ok, err := h.re.MatchString(s)
	return err == nil && ok
}

func (h regexp2Handle) String() string { return h.re.String() }

// StdlibRegexEngine compiles patterns with the standard library's RE2
// engine. Faster than the default, but rejects ECMA constructs like
// backreferences that RE2 cannot represent.
type StdlibRegexEngine struct{}

func (StdlibRegexEngine) Compile(pattern string) (RegexpHandle, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return stdlibHandle{re}, nil
}

type stdlibHandle struct{ re *regexp.Regexp }

func (h stdlibHandle) MatchString(s string) bool { return h.re.MatchString(s) }
func (h stdlibHandle) String() string            { return h.re.String() }
