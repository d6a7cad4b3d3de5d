// Package mock has an in-memory HTTP transport for client tests that need
// no server.
package mock

import (
	"io"
	"net/http"
	"strings"
)

type transport struct {
	f func(*http.Request) (*http.Response, error)
}

func (t *transport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.f(r)
}

// NewHTTPClient returns a client that answers every request with f.
func NewHTTPClient(f func(*http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &transport{f: f},
	}
}

// FailingHTTPClient returns a client whose requests never reach a server.
func FailingHTTPClient(err error) *http.Client {
	return NewHTTPClient(func(*http.Request) (*http.Response, error) {
		return nil, err
	})
}

// NewHTTPResponse is a JSON response with the given status and body.
func NewHTTPResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
