package jsonval

import (
	"os"
	"strconv"
)

// Config is the configuration surface described by the spec: a coercion
// toggle, the installed format table, the on-disk cache directory, and a
// debug/warning switch. Zero value is the default configuration a New()
// Validator starts with, before environment variables and Options are
// applied.
type Config struct {
	Coerce                   bool
	CacheDir                 string
	Debug                    bool
	WarnOnMissingFormat      bool
	StrictFormats            bool
	SkipMetaSchemaValidation bool
	formats                  map[string]formatFunc
	regexEngine              RegexEngine
}

// Option configures a Validator. Options are applied in order, so later
// options override earlier ones.
type Option func(*Config)

// WithCoercion enables or disables the opt-in string<->number coercion
// described in §4.5. Disabled by default.
func WithCoercion(enabled bool) Option {
	return func(c *Config) { c.Coerce = enabled }
}

// WithCacheDir overrides the on-disk schema cache directory. An empty
// string disables the on-disk cache (documents are still cached
// in-memory for the lifetime of the Validator).
func WithCacheDir(dir string) Option {
	return func(c *Config) { c.CacheDir = dir }
}

// WithDebug enables verbose tracing of loader and resolver activity to
// stderr.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.Debug = enabled }
}

// WithWarnOnMissingFormat enables a diagnostic warning (printed to
// stderr, never surfaced as a validation Error) when a schema names a
// format with no installed predicate.
func WithWarnOnMissingFormat(enabled bool) Option {
	return func(c *Config) { c.WarnOnMissingFormat = enabled }
}

// WithStrictFormats installs the formats package's RFC-strict hostname
// and ipv6 predicates in place of the lax, always-passing defaults.
func WithStrictFormats(enabled bool) Option {
	return func(c *Config) { c.StrictFormats = enabled }
}

// WithFormat installs or overrides a single named format predicate.
func WithFormat(name string, fn func(any) bool) Option {
	return func(c *Config) {
		if c.formats == nil {
			c.formats = map[string]formatFunc{}
		}
		c.formats[name] = fn
	}
}

// WithRegexEngine overrides the engine used to compile `pattern` and the
// `patternProperties` keys. Defaults to an ECMAScript-mode
// dlclark/regexp2 engine. The `regex` format is checked with the
// standard library's regexp package whatever engine is installed.
func WithRegexEngine(engine RegexEngine) Option {
	return func(c *Config) { c.regexEngine = engine }
}

// WithSkipMetaSchemaValidation disables the structural check that Schema
// otherwise runs against the embedded Draft 4 meta-schema before
// resolving any $ref. Meant for callers who already trust their schema
// documents and want to skip the extra pass.
func WithSkipMetaSchemaValidation(enabled bool) Option {
	return func(c *Config) { c.SkipMetaSchemaValidation = enabled }
}

// defaultConfig builds the zero-state configuration, applying the
// environment variable fallbacks named in §6 before any explicit Option
// is applied.
func defaultConfig() Config {
	c := Config{
		CacheDir:    os.Getenv("JSONVAL_CACHE_DIR"),
		regexEngine: defaultRegexEngine{},
		formats:     defaultFormats(),
	}
	if v, err := strconv.ParseBool(os.Getenv("JSONVAL_COERCE_VALUES")); err == nil {
		c.Coerce = v
	}
	if v, err := strconv.ParseBool(os.Getenv("JSONVAL_DEBUG")); err == nil {
		c.Debug = v
	}
	if v, err := strconv.ParseBool(os.Getenv("JSONVAL_WARN_ON_MISSING_FORMAT")); err == nil {
		c.WarnOnMissingFormat = v
	}
	return c
}
