package jsonval

import (
	"bytes"
	"crypto/md5"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	_ "github.com/kelidra/jsonval/httploader"
	"github.com/kelidra/jsonval/loader"
)

//go:embed internal/metaschema
var embeddedFS embed.FS

// document is a parsed schema document together with the namespace it
// was ingested under.
type document struct {
	namespace string // canonical, fragment/port stripped
	root      any
}

// documentLoader implements §4.1: it fetches raw bytes from file/URL/
// embedded-resource schemes, detects JSON vs YAML, parses to a generic
// Json tree, and caches by both canonical namespace and declared id.
type documentLoader struct {
	cfg Config

	mu    sync.Mutex
	byURL map[string]*document
	byID  map[string]*document
}

func newDocumentLoader(cfg Config) *documentLoader {
	return &documentLoader{
		cfg:   cfg,
		byURL: map[string]*document{},
		byID:  map[string]*document{},
	}
}

// canonicalNamespace strips the fragment and port from a URI, per the
// invariant that document cache keys are canonicalized.
func canonicalNamespace(rawurl string) string {
	u := rawurl
	if i := strings.IndexByte(u, '#'); i >= 0 {
		u = u[:i]
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		scheme, rest, _ := strings.Cut(u, "://")
		host, path, hasPath := strings.Cut(rest, "/")
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		u = scheme + "://" + host
		if hasPath {
			u += "/" + path
		}
	}
	return u
}

func (dl *documentLoader) load(rawurl string) (*document, error) {
	ns := canonicalNamespace(rawurl)

	dl.mu.Lock()
	if d, ok := dl.byURL[ns]; ok {
		dl.mu.Unlock()
		return d, nil
	}
	dl.mu.Unlock()

	body, err := dl.fetch(ns)
	if err != nil {
		return nil, &LoadError{URL: ns, Cause: err}
	}
	root, err := dl.parse(ns, body)
	if err != nil {
		return nil, &LoadError{URL: ns, Cause: err}
	}

	d := &document{namespace: ns, root: root}

	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.byURL[ns] = d
	if obj, ok := asObject(root); ok {
		if id, ok := obj["id"].(string); ok && id != "" {
			dl.byID[canonicalNamespace(id)] = d
		}
	}
	return d, nil
}

// cached returns an already-loaded document without doing any
// I/O, checked first by namespace then by declared id.
func (dl *documentLoader) cached(key string) (*document, bool) {
	key = canonicalNamespace(key)
	dl.mu.Lock()
	defer dl.mu.Unlock()
	if d, ok := dl.byURL[key]; ok {
		return d, true
	}
	d, ok := dl.byID[key]
	return d, ok
}

// addInMemory registers root directly under namespace, used when a
// caller hands the Validator a native Go value instead of a URL.
func (dl *documentLoader) addInMemory(namespace string, root any) *document {
	ns := canonicalNamespace(namespace)
	d := &document{namespace: ns, root: root}
	dl.mu.Lock()
	defer dl.mu.Unlock()
	dl.byURL[ns] = d
	if obj, ok := asObject(root); ok {
		if id, ok := obj["id"].(string); ok && id != "" {
			dl.byID[canonicalNamespace(id)] = d
		}
	}
	return d
}

func (dl *documentLoader) fetch(ns string) ([]byte, error) {
	if strings.HasPrefix(ns, "data://") {
		return dl.fetchEmbedded(ns)
	}
	if strings.HasPrefix(ns, "http://") || strings.HasPrefix(ns, "https://") {
		if body, ok := dl.readCache(ns); ok {
			return body, nil
		}
		body, err := loader.Load(ns)
		if err != nil {
			return nil, err
		}
		dl.writeCache(ns, body)
		return body, nil
	}
	return loader.Load(ns)
}

// fetchEmbedded resolves data://Module/Name against the bundled
// embed.FS, the mechanism used to ship the Draft 4 meta-schema without
// requiring network access.
func (dl *documentLoader) fetchEmbedded(ns string) ([]byte, error) {
	rest := strings.TrimPrefix(ns, "data://")
	module, name, ok := strings.Cut(rest, "/")
	if !ok {
		return nil, fmt.Errorf("malformed data url %q", ns)
	}
	if module != "jsonval" {
		return nil, fmt.Errorf("unknown embedded module %q", module)
	}
	path := "internal/metaschema/" + name + ".json"
	body, err := embeddedFS.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || err == fs.ErrNotExist {
			return nil, fmt.Errorf("embedded resource %q not found", name)
		}
		return nil, err
	}
	return body, nil
}

// cacheFile returns the on-disk cache path for namespace, named by the
// md5 of the canonical namespace, as specified.
func (dl *documentLoader) cacheFile(ns string) string {
	if dl.cfg.CacheDir == "" {
		return ""
	}
	sum := md5.Sum([]byte(ns))
	return filepath.Join(dl.cfg.CacheDir, hex.EncodeToString(sum[:]))
}

func (dl *documentLoader) readCache(ns string) ([]byte, bool) {
	path := dl.cacheFile(ns)
	if path == "" {
		return nil, false
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return body, true
}

func (dl *documentLoader) writeCache(ns string, body []byte) {
	path := dl.cacheFile(ns)
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, body, 0o644)
}

// parse inspects the first non-whitespace byte of body: '{' means JSON,
// anything else is handed to the lazily-initialized YAML backend.
func (dl *documentLoader) parse(ns string, body []byte) (any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return dl.parseYAML(ns, trimmed)
}

// parseYAML decodes body via the goccy/go-yaml backend, which is compiled
// into the package; this loader therefore never returns
// YamlBackendMissing.
func (dl *documentLoader) parseYAML(ns string, body []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML converts goccy/go-yaml's decode types (map[string]any
// keys already match, but numbers decode as int/float64/uint64) into the
// json.Number-based shape the rest of the validator expects, so YAML and
// JSON documents are indistinguishable once parsed.
func normalizeYAML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeYAML(val)
		}
		return out
	case int:
		return json.Number(fmt.Sprintf("%d", v))
	case int64:
		return json.Number(fmt.Sprintf("%d", v))
	case uint64:
		return json.Number(fmt.Sprintf("%d", v))
	case float64:
		return json.Number(fmt.Sprintf("%v", v))
	default:
		return v
	}
}
