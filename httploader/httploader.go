// Package httploader implements loader.Loader for http/https urls using
// net/http. The HTTP client itself is an out-of-scope collaborator per
// the validator's spec (only the Load(url) (body, error) contract is
// fixed); this package is the default wiring, not a requirement. A
// caller who needs custom transport, auth, or retry behavior can
// loader.Register("https", ...) their own implementation instead.
//
// Importing this package for its side effect registers it:
//
//	import _ "github.com/kelidra/jsonval/httploader"
package httploader

import (
	"fmt"
	"io"
	"net/http"

	"github.com/kelidra/jsonval/loader"
)

type httpLoader struct {
	client *http.Client
}

func (l httpLoader) Load(url string) ([]byte, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsonval: %s returned status code %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func init() {
	l := httpLoader{client: http.DefaultClient}
	loader.Register("http", l)
	loader.Register("https", l)
}

// Use registers client as the Loader for http/https urls, replacing the
// default http.DefaultClient-backed loader. Useful for installing
// timeouts, redirect policies, or mock transports in tests.
func Use(client *http.Client) {
	loader.Register("http", httpLoader{client: client})
	loader.Register("https", httpLoader{client: client})
}
