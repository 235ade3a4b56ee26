package stub

import "net/http"

// Response is the resolved artifact a matched stub hands back to the
// client's transport layer: status code, headers, and body bytes.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewResponse creates a Response with the given status and an empty header
// map. Intended for BuilderFunc implementations.
func NewResponse(status int) *Response {
	return &Response{
		StatusCode: status,
		Headers:    make(http.Header),
	}
}
