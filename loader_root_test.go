package jsonval

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestParseSniffsJSONVsYAML(t *testing.T) {
	dl := newDocumentLoader(Config{})

	v, err := dl.parse("ns", []byte(`{"type": "string"}`))
	if err != nil {
		t.Fatalf("parse JSON: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok || obj["type"] != "string" {
		t.Fatalf("got %#v", v)
	}

	v, err = dl.parse("ns", []byte("type: string\nminLength: 2\n"))
	if err != nil {
		t.Fatalf("parse YAML: %v", err)
	}
	obj, ok = v.(map[string]any)
	if !ok || obj["type"] != "string" {
		t.Fatalf("got %#v", v)
	}
	if n, ok := obj["minLength"].(json.Number); !ok || n != "2" {
		t.Fatalf("minLength should normalize to json.Number: %#v", obj["minLength"])
	}
}

func TestCacheFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	dl := newDocumentLoader(Config{CacheDir: dir})

	ns := "https://example.com/schema.json"
	if _, ok := dl.readCache(ns); ok {
		t.Fatal("cache should start empty")
	}

	dl.writeCache(ns, []byte(`{"type":"object"}`))
	body, ok := dl.readCache(ns)
	if !ok {
		t.Fatal("expected a cache hit after writeCache")
	}
	if string(body) != `{"type":"object"}` {
		t.Fatalf("got %q", body)
	}

	path := dl.cacheFile(ns)
	if filepath.Dir(path) != dir {
		t.Fatalf("cache file should live under CacheDir, got %q", path)
	}
}

func TestCacheFileEmptyWithNoCacheDir(t *testing.T) {
	dl := newDocumentLoader(Config{})
	if dl.cacheFile("https://example.com/x.json") != "" {
		t.Fatal("no CacheDir means no cache file")
	}
	if _, ok := dl.readCache("https://example.com/x.json"); ok {
		t.Fatal("readCache must report a miss with no CacheDir")
	}
	dl.writeCache("https://example.com/x.json", []byte("ignored")) // must not panic
}

func TestFetchEmbeddedLoadsDraft4MetaSchema(t *testing.T) {
	dl := newDocumentLoader(Config{})
	body, err := dl.fetchEmbedded("data://jsonval/draft4")
	if err != nil {
		t.Fatalf("fetchEmbedded: %v", err)
	}
	v, err := dl.parse("data://jsonval/draft4", body)
	if err != nil {
		t.Fatalf("parse embedded meta-schema: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("meta-schema should decode to an object, got %#v", v)
	}
	if _, ok := obj["properties"]; !ok {
		t.Fatalf("draft4 meta-schema should declare properties: %#v", obj)
	}
}

func TestFetchEmbeddedRejectsUnknownModuleOrName(t *testing.T) {
	dl := newDocumentLoader(Config{})
	if _, err := dl.fetchEmbedded("data://other/draft4"); err == nil {
		t.Fatal("want an error for an unknown embedded module")
	}
	if _, err := dl.fetchEmbedded("data://jsonval/nonexistent"); err == nil {
		t.Fatal("want an error for a missing embedded resource")
	}
	if _, err := dl.fetchEmbedded("not-a-data-url"); err == nil {
		t.Fatal("want an error for a malformed data url")
	}
}

func TestDocumentLoaderCachesByNamespaceAndID(t *testing.T) {
	dl := newDocumentLoader(Config{})
	root := map[string]any{"id": "https://example.com/schemas/widget#", "type": "object"}
	dl.addInMemory("https://example.com/widget.json", root)

	if _, ok := dl.cached("https://example.com/widget.json"); !ok {
		t.Fatal("expected a namespace-keyed cache hit")
	}
	if _, ok := dl.cached("https://example.com/schemas/widget"); !ok {
		t.Fatal("expected an id-keyed cache hit")
	}
	if _, ok := dl.cached("https://example.com/widget.json#/properties/x"); !ok {
		t.Fatal("cached lookups must strip the fragment before matching")
	}
}

func TestCanonicalNamespaceStripsFragmentAndPort(t *testing.T) {
	cases := map[string]string{
		"https://example.com:8080/schema.json#/definitions/x": "https://example.com/schema.json",
		"https://example.com/schema.json":                     "https://example.com/schema.json",
		"schema.json#/foo":                                     "schema.json",
	}
	for in, want := range cases {
		if got := canonicalNamespace(in); got != want {
			t.Errorf("canonicalNamespace(%q) = %q, want %q", in, got, want)
		}
	}
}
