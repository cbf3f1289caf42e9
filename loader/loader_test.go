package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kelidra/jsonval/loader"
)

func TestLoadFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(`{"type":"string"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	body, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(body) != `{"type":"string"}` {
		t.Fatalf("got %q", body)
	}
}

func TestLoadUnregisteredScheme(t *testing.T) {
	_, err := loader.Load("ftp://example.com/schema.json")
	if err == nil {
		t.Fatal("expected an error for an unregistered scheme")
	}
	if _, ok := err.(loader.SchemeNotRegisteredError); !ok {
		t.Fatalf("got %T, want SchemeNotRegisteredError", err)
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	calls := 0
	loader.Register("mem", fakeLoader{&calls})
	defer loader.Unregister("mem")

	if _, err := loader.Load("mem://anything"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if calls != 1 {
		t.Fatalf("want 1 call, got %d", calls)
	}

	loader.Unregister("mem")
	if _, err := loader.Load("mem://anything"); err == nil {
		t.Fatal("expected an error after Unregister")
	}
}

type fakeLoader struct{ calls *int }

func (f fakeLoader) Load(url string) ([]byte, error) {
	*f.calls++
	return []byte("ok"), nil
}
