package jsonval

import (
	"fmt"
	"sync/atomic"
)

// Validator holds one ingested, $ref-resolved schema plus the
// configuration (formats, regex engine, cache) it validates against.
// The zero value is not usable; construct one with New.
type Validator struct {
	cfg Config

	docs     *documentLoader
	resolver *resolver

	schema     any
	metaSchema any
	nsSeq      atomic.Uint64
}

// New builds a Validator with the default configuration described in
// §6, including the environment variable fallbacks.
func New(opts ...Option) *Validator {
	v := &Validator{cfg: defaultConfig()}
	v.docs = newDocumentLoader(v.cfg)
	v.resolver = newResolver(v.docs)
	v.Configure(opts...)
	return v
}

// Configure applies additional Options on top of the current
// configuration, in order.
func (v *Validator) Configure(opts ...Option) *Validator {
	if v.cfg.formats == nil {
		v.cfg.formats = defaultFormats()
	}
	for _, opt := range opts {
		opt(&v.cfg)
	}
	if v.cfg.StrictFormats {
		strictFormats(v.cfg.formats)
	}
	if v.cfg.regexEngine == nil {
		v.cfg.regexEngine = defaultRegexEngine{}
	}
	v.docs.cfg = v.cfg
	return v
}

// Schema ingests source as the Validator's active schema: source may be
// a URL string (resolved through the loader registry, cached by
// namespace) or an already-decoded Go value (map[string]any, typically
// from encoding/json or a caller-supplied structure). Every $ref in the
// document, including cyclic and cross-document ones, is closed before
// Schema returns.
func (v *Validator) Schema(source any) (*Validator, error) {
	var doc *document
	switch s := source.(type) {
	case string:
		loaded, err := v.docs.load(s)
		if err != nil {
			return nil, &SchemaError{SchemaURL: s, Err: err}
		}
		doc = loaded
	default:
		ns := fmt.Sprintf("data://jsonval/inline-%d", v.nsSeq.Add(1))
		if obj, ok := asObject(source); ok {
			if id, ok := obj["id"].(string); ok && id != "" {
				ns = canonicalNamespace(id)
			}
		}
		doc = v.docs.addInMemory(ns, source)
	}

	if !v.cfg.SkipMetaSchemaValidation {
		if err := v.checkMetaSchema(doc); err != nil {
			return nil, err
		}
	}

	resolved, err := v.resolver.resolve(doc.root, doc.namespace)
	if err != nil {
		return nil, &SchemaError{SchemaURL: doc.namespace, Err: err}
	}
	v.schema = resolved
	debugf(&v.cfg, "schema %q resolved", doc.namespace)
	return v, nil
}

// checkMetaSchema validates doc's raw, unresolved tree against the
// embedded Draft 4 meta-schema, so a document that isn't even
// structurally a schema fails with a useful SchemaError instead of a
// confusing $ref resolution error further down the line.
func (v *Validator) checkMetaSchema(doc *document) error {
	meta, err := v.draft4MetaSchema()
	if err != nil {
		return &SchemaError{SchemaURL: doc.namespace, Err: err}
	}
	errs, _ := validateSchema(&v.cfg, doc.root, "/", meta)
	if len(errs) == 0 {
		return nil
	}
	return &SchemaError{SchemaURL: doc.namespace, Err: fmt.Errorf("not a valid draft 4 schema: %v", errs)}
}

// draft4MetaSchema lazily loads and $ref-resolves the embedded Draft 4
// meta-schema, caching the result for the life of the Validator.
//
// It resolves a synthetic {"$ref": "#"} wrapper rather than walking
// doc.root directly. The meta-schema is itself self-referential
// ("properties": {"additionalProperties": {"$ref": "#"}} and friends),
// and the resolver's cycle-closing memo only shares one placeholder
// identity across every "$ref": "#" it sees *within a single resolved
// occurrence of that ref*. Walking doc.root directly makes the
// top-level result a distinct, unmemoized tree from the one every
// nested "$ref": "#" inside it resolves to, so a patch applied to the
// former would never be seen by nested/recursive checks. Resolving the
// wrapper instead makes the top-level result and every internal
// self-reference the exact same object. The wrapper is resolved against
// the meta-schema's declared id, not its data:// namespace, because the
// nested "$ref": "#" nodes sit under that id and are memoized under it.
func (v *Validator) draft4MetaSchema() (any, error) {
	if v.metaSchema != nil {
		return v.metaSchema, nil
	}
	doc, err := v.docs.load("data://jsonval/draft4")
	if err != nil {
		return nil, err
	}
	ns := doc.namespace
	if obj, ok := asObject(doc.root); ok {
		if id, ok := obj["id"].(string); ok && id != "" {
			ns = id
		}
	}
	resolved, err := v.resolver.resolve(map[string]any{"$ref": "#"}, ns)
	if err != nil {
		return nil, err
	}
	v.metaSchema = relaxMetaSchemaForExtensions(resolved)
	return v.metaSchema, nil
}

// relaxMetaSchemaForExtensions widens two spots in the stock Draft 4
// meta-schema so it doesn't reject documents that use this validator's
// own supported extensions: the Draft-3 boolean `required` flag on a
// property schema, and the Swagger-style "any"/"file" type names.
// Everything else about the meta-schema is left untouched.
//
// It mutates obj["properties"] in place rather than copying it: every
// "$ref": "#" placeholder the resolver installed while closing the
// meta-schema's self-reference shares identity with this same map (see
// resolver.go), so a shallow copy here would only patch the top-level
// view and leave every nested recursive check looking at the original.
func relaxMetaSchemaForExtensions(meta any) any {
	obj, ok := asObject(meta)
	if !ok {
		return meta
	}
	props, ok := asObject(obj["properties"])
	if !ok {
		return meta
	}

	if reqSchema, ok := props["required"]; ok {
		props["required"] = map[string]any{
			"anyOf": []any{reqSchema, map[string]any{"type": "boolean"}},
		}
	}

	simpleTypes := []any{"array", "boolean", "integer", "null", "number", "object", "string", "any", "file"}
	props["type"] = map[string]any{
		"anyOf": []any{
			map[string]any{"enum": simpleTypes},
			map[string]any{
				"type":        "array",
				"items":       map[string]any{"enum": simpleTypes},
				"minItems":    1,
				"uniqueItems": true,
			},
		},
	}

	return meta
}

// CurrentSchema returns the active, already $ref-resolved schema tree,
// or nil if Schema has not been called yet.
func (v *Validator) CurrentSchema() any {
	return v.schema
}

func (v *Validator) resolvedSchema() (any, error) {
	if v.schema == nil {
		return nil, fmt.Errorf("jsonval: no schema configured, call Schema first")
	}
	return v.schema, nil
}

// Validate checks data against the Validator's active schema (or, when
// schemaOverride is given, an ad-hoc schema used for this call only) and
// returns every keyword violation found. A nil override is treated as
// absent. A nil/empty result means data is valid; a non-nil error return
// means no schema is configured or the override failed to resolve, not
// that data is invalid.
func (v *Validator) Validate(data any, schemaOverride ...any) ([]Error, error) {
	schema, err := v.schemaFor(schemaOverride)
	if err != nil {
		return nil, err
	}
	errs, _ := validateSchema(&v.cfg, data, "/", schema)
	return errs, nil
}

func (v *Validator) schemaFor(override []any) (any, error) {
	if len(override) == 0 || override[0] == nil {
		return v.resolvedSchema()
	}
	ns := fmt.Sprintf("data://jsonval/override-%d", v.nsSeq.Add(1))
	resolved, err := v.resolver.resolve(override[0], ns)
	if err != nil {
		return nil, &SchemaError{SchemaURL: ns, Err: err}
	}
	return resolved, nil
}
