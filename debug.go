package jsonval

import (
	"fmt"
	"os"
)

// warnf prints a non-fatal diagnostic to stderr. It backs
// WithWarnOnMissingFormat and is intentionally not routed through the
// Error slice: these are developer warnings about the schema, not
// validation failures of the data.
func warnf(cfg *Config, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jsonval: warning: "+format+"\n", args...)
}

// debugf prints a trace line when Config.Debug is enabled.
func debugf(cfg *Config, format string, args ...any) {
	if !cfg.Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "jsonval: debug: "+format+"\n", args...)
}
