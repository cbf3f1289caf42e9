package jsonval

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// resolver implements §4.2: a post-order walk over a schema document that
// replaces every $ref node with its resolved subtree. Cycles are broken
// by installing an empty placeholder map into the memo table before
// recursing into the reference's target. Because Go map values share
// their underlying storage across copies, every alias of that placeholder
// observes the keys filled in once resolution of the target completes.
type resolver struct {
	docs *documentLoader
}

func newResolver(docs *documentLoader) *resolver {
	return &resolver{docs: docs}
}

// resolve returns a schema tree semantically equivalent to root but
// containing no $ref keys, per the Reference resolver contract.
func (r *resolver) resolve(root any, namespace string) (any, error) {
	memo := map[string]any{}
	return r.walk(root, namespace, memo)
}

func (r *resolver) walk(node any, ns string, memo map[string]any) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if ref, ok := n["$ref"].(string); ok {
			return r.resolveRef(ref, ns, memo)
		}
		childNS := ns
		if id, ok := n["id"].(string); ok && id != "" {
			if resolved, err := resolveURL(ns, id); err == nil {
				childNS = resolved
			}
		}
		out := make(map[string]any, len(n))
		for _, k := range sortedKeys(n) {
			v, err := r.walk(n[k], childNS, memo)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			v, err := r.walk(item, ns, memo)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return node, nil
	}
}

func (r *resolver) resolveRef(ref, ns string, memo map[string]any) (any, error) {
	full, err := normalizeRef(ref, ns)
	if err != nil {
		return nil, &ResolveError{Ref: ref, Namespace: ns, Cause: err}
	}

	if existing, ok := memo[full]; ok {
		return existing, nil
	}
	placeholder := map[string]any{}
	memo[full] = placeholder

	targetNode, targetNS, err := r.lookup(full)
	if err != nil {
		return nil, &ResolveError{Ref: ref, Namespace: ns, Cause: err}
	}

	resolved, err := r.walk(targetNode, targetNS, memo)
	if err != nil {
		return nil, err
	}

	resolvedObj, ok := asObject(resolved)
	if !ok {
		// A $ref target that isn't a mapping (e.g. a bare `true`/`false`
		// boolean schema, not part of Draft 4 but tolerated) can't be
		// merged into the placeholder; hand it back directly, which
		// means it can never be part of a cycle. Acceptable, since
		// non-mapping schemas have nothing to cycle through.
		return resolved, nil
	}
	for k, v := range resolvedObj {
		if k == "id" {
			continue // belonged to the source document, not this position
		}
		placeholder[k] = v
	}
	return placeholder, nil
}

// lookup loads (if needed) the document named by full's base and
// navigates its JSON pointer fragment, returning the raw (unresolved)
// target node and the namespace subsequent nested $refs within it should
// resolve against.
func (r *resolver) lookup(full string) (any, string, error) {
	base, frag := splitFragment(full)

	doc, ok := r.docs.cached(base)
	if !ok {
		loaded, err := r.docs.load(base)
		if err != nil {
			return nil, "", err
		}
		doc = loaded
	}

	if frag == "" || frag == "#" || frag == "#/" {
		return doc.root, doc.namespace, nil
	}
	node, err := resolvePointer(doc.root, strings.TrimPrefix(frag, "#"))
	if err != nil {
		return nil, "", err
	}
	return node, doc.namespace, nil
}

// normalizeRef implements the three reference forms from the data model:
// a bare word, a "#/..." fragment against the current namespace, or an
// absolute/relative URI with optional fragment.
func normalizeRef(ref, ns string) (string, error) {
	if ref == "" {
		return ns, nil
	}
	base, _ := splitFragment(ns)
	if ref == "#" || strings.HasPrefix(ref, "#/") {
		return base + ref, nil
	}
	if isBareWord(ref) {
		return base + "#/definitions/" + ref, nil
	}
	resolved, err := resolveURL(ns, ref)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

func isBareWord(ref string) bool {
	return !strings.ContainsAny(ref, "/:#")
}

func splitFragment(u string) (base, frag string) {
	if i := strings.IndexByte(u, '#'); i >= 0 {
		return u[:i], u[i:]
	}
	return u, ""
}

func resolveURL(ns, ref string) (string, error) {
	base, err := url.Parse(ns)
	if err != nil {
		return "", err
	}
	target, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(target).String(), nil
}

func unescapeToken(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	r := strings.NewReplacer("~1", "/", "~0", "~")
	return r.Replace(tok)
}

// resolvePointer navigates root by an RFC 6901 JSON pointer (without its
// leading '#'), e.g. "/definitions/Foo".
func resolvePointer(root any, ptr string) (any, error) {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return root, nil
	}
	cur := root
	for _, raw := range strings.Split(ptr, "/") {
		seg := unescapeToken(raw)
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, fmt.Errorf("no such property %q", seg)
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(c) {
				return nil, fmt.Errorf("invalid array index %q", seg)
			}
			cur = c[idx]
		default:
			return nil, fmt.Errorf("cannot navigate into %T at %q", cur, seg)
		}
	}
	return cur, nil
}
