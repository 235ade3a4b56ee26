// Package transport wires a stub registry into net/http clients.
//
// Transport implements http.RoundTripper over a stub.Registry, so any
// *http.Client using it resolves requests in-process against the
// registered stubs instead of the network. The client's own middleware,
// response decoding, and status handling run unchanged.
package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/stubtrip/stubtrip/pkg/stub"
)

// Transport is an http.RoundTripper that resolves requests against a stub
// registry instead of performing network I/O.
type Transport struct {
	registry *stub.Registry
}

// New creates a Transport backed by the given registry.
func New(registry *stub.Registry) *Transport {
	return &Transport{registry: registry}
}

// RoundTrip builds a request descriptor from the outbound request, resolves
// it through the registry, and converts the resolved artifact into an
// *http.Response. A resolution failure (no stub matched, reply build error)
// is returned as the round-trip error; net/http clients surface it wrapped
// in *url.Error per their usual contract.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var raw []byte
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		raw = data
	}

	d := stub.DescribeRequest(req, raw)

	// The reply sees the body exactly once, as a fresh reader
	var body io.Reader
	if raw != nil {
		body = bytes.NewReader(raw)
	}

	resp, err := t.registry.Fetch(req.Context(), d, body)
	if err != nil {
		return nil, err
	}

	return toHTTPResponse(resp, req), nil
}

// Client returns an *http.Client whose transport is t.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// Client is shorthand for transport.New(registry).Client().
func Client(registry *stub.Registry) *http.Client {
	return New(registry).Client()
}

// toHTTPResponse converts a resolved stub response into the *http.Response
// shape the client's decoding pipeline expects.
func toHTTPResponse(resp *stub.Response, req *http.Request) *http.Response {
	headers := resp.Headers
	if headers == nil {
		headers = make(http.Header)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		StatusCode:    resp.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        headers,
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}
}
