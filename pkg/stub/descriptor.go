package stub

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/stubtrip/stubtrip/internal/matching"
)

// RequestDescriptor is the structured representation of an outgoing request
// presented to the stub registry. It is populated by the transport layer
// and only ever read by matchers and replies.
type RequestDescriptor struct {
	// Method is the HTTP method, as sent by the client.
	Method string

	// Path is the normalized absolute request path, without scheme, host,
	// or query string.
	Path string

	// Query holds the request's query parameters.
	Query url.Values

	// Body is the parsed request body: JSON bodies decode to their
	// map/slice/scalar shape, other bodies are presented as a string.
	// Nil when the request carried no body.
	Body any

	// RawBody is the request body verbatim. Nil when absent.
	RawBody []byte
}

// DescribeRequest builds a RequestDescriptor from an outbound request and
// its already-read body bytes.
func DescribeRequest(r *http.Request, body []byte) *RequestDescriptor {
	d := &RequestDescriptor{
		Method: r.Method,
		Path:   matching.NormalizePath(r.URL.Path),
		Query:  r.URL.Query(),
	}
	if len(body) > 0 {
		d.RawBody = body
		d.Body = parseBody(body)
	}
	return d
}

// parseBody decodes a request body for structured matching. Valid JSON
// yields its decoded value; anything else is kept as a string.
func parseBody(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		return v
	}
	return string(body)
}
