package jsonval

import "fmt"

// Error is a single validation error: a JSON pointer naming the offending
// location within the data, and a human-readable reason. Errors are
// value-like and comparable.
type Error struct {
	Path    string
	Message string
}

func (e Error) String() string { return e.Path + ": " + e.Message }

// Error satisfies the error interface so a single Error can be returned
// or wrapped on its own, even though Validate normally returns a slice.
func (e Error) Error() string { return e.String() }

// MarshalJSON renders an Error as {"message": …, "path": …}, matching the
// field naming the error model specifies.
func (e Error) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("{%q:%q,%q:%q}", "message", e.Message, "path", e.Path)), nil
}

func newError(path string, message fmt.Stringer) Error {
	return Error{Path: path, Message: message.String()}
}

// LoadError is returned by Schema when a schema document cannot be
// fetched or parsed.
type LoadError struct {
	URL   string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("jsonval: failed loading %q: %v", e.URL, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ResolveError is returned by Schema when a $ref cannot be resolved.
type ResolveError struct {
	Ref       string
	Namespace string
	Cause     error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("jsonval: failed resolving %q against %q: %v", e.Ref, e.Namespace, e.Cause)
}

func (e *ResolveError) Unwrap() error { return e.Cause }

// YamlBackendMissing is returned when a YAML document is loaded but no
// YAML backend could be initialized.
type YamlBackendMissing struct {
	URL string
}

func (e *YamlBackendMissing) Error() string {
	return fmt.Sprintf("jsonval: no YAML backend available to parse %q", e.URL)
}

// SchemaError wraps a compilation-time failure with the URL of the
// top-level schema that failed to ingest, even when the actual failure
// happened in a referenced document.
type SchemaError struct {
	SchemaURL string
	Err       error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("jsonval: schema %q failed to compile: %v", e.SchemaURL, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
