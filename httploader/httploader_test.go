package httploader_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/kelidra/jsonval/httploader"
	"github.com/kelidra/jsonval/loader"
)

func TestHTTPLoaderFetchesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"object"}`))
	}))
	defer srv.Close()

	body, err := loader.Load(srv.URL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(body) != `{"type":"object"}` {
		t.Fatalf("got %q", body)
	}
}

func TestHTTPLoaderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := loader.Load(srv.URL); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}
