package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Media types forced onto replies by variant. The implied content type
// always wins over a conflicting user-supplied header.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Reply is a response-construction strategy. Build produces the response
// artifact for a matched request; it receives the request descriptor and a
// reader over the outgoing request body (nil when the request had none).
// Only BuilderFunc replies consume the body reader.
type Reply interface {
	Build(ctx context.Context, d *RequestDescriptor, body io.Reader) (*Response, error)
}

// ComputeFunc derives a JSON-serializable reply value from the request
// descriptor. It may perform arbitrary work; errors propagate unmodified to
// the caller of Fetch.
type ComputeFunc func(ctx context.Context, d *RequestDescriptor) (any, error)

// BuilderFunc is a fully custom Reply. It receives the descriptor and the
// request body reader (made available exactly once per invocation) and is
// responsible for the complete response artifact.
type BuilderFunc func(ctx context.Context, d *RequestDescriptor, body io.Reader) (*Response, error)

// Build delegates to the wrapped builder.
func (f BuilderFunc) Build(ctx context.Context, d *RequestDescriptor, body io.Reader) (*Response, error) {
	return f(ctx, d, body)
}

// JSONReply serializes a static value to JSON.
type JSONReply struct {
	data    any
	status  int
	headers http.Header
}

// JSON creates a reply that serializes v to a JSON body with status 200.
// A nil v produces a zero-length body, not the literal "null".
func JSON(v any) *JSONReply {
	return &JSONReply{data: v, status: http.StatusOK, headers: make(http.Header)}
}

// WithStatus sets the response status code.
func (r *JSONReply) WithStatus(status int) *JSONReply {
	r.status = status
	return r
}

// WithHeader adds a response header. A Content-Type set here is overridden
// by the JSON media type at build time.
func (r *JSONReply) WithHeader(key, value string) *JSONReply {
	r.headers.Add(key, value)
	return r
}

// Build serializes the value and forces the JSON content type.
func (r *JSONReply) Build(_ context.Context, _ *RequestDescriptor, _ io.Reader) (*Response, error) {
	return buildJSON(r.data, r.status, r.headers)
}

// JSONFromReply computes its JSON value from the request at build time.
type JSONFromReply struct {
	compute ComputeFunc
	status  int
	headers http.Header
}

// JSONFrom creates a reply whose JSON body is computed from the request
// descriptor. The compute function never sees the request body stream; only
// the descriptor's parsed Body field is visible to it.
func JSONFrom(fn ComputeFunc) *JSONFromReply {
	return &JSONFromReply{compute: fn, status: http.StatusOK, headers: make(http.Header)}
}

// WithStatus sets the response status code.
func (r *JSONFromReply) WithStatus(status int) *JSONFromReply {
	r.status = status
	return r
}

// WithHeader adds a response header.
func (r *JSONFromReply) WithHeader(key, value string) *JSONFromReply {
	r.headers.Add(key, value)
	return r
}

// Build runs the compute function and serializes its result. Compute
// failures propagate unwrapped.
func (r *JSONFromReply) Build(ctx context.Context, d *RequestDescriptor, _ io.Reader) (*Response, error) {
	v, err := r.compute(ctx, d)
	if err != nil {
		return nil, err
	}
	return buildJSON(v, r.status, r.headers)
}

// TextReply responds with a UTF-8 text body.
type TextReply struct {
	text    string
	status  int
	headers http.Header
}

// Text creates a reply with the given plain-text body and status 200.
// An empty string yields an empty body.
func Text(text string) *TextReply {
	return &TextReply{text: text, status: http.StatusOK, headers: make(http.Header)}
}

// WithStatus sets the response status code.
func (r *TextReply) WithStatus(status int) *TextReply {
	r.status = status
	return r
}

// WithHeader adds a response header.
func (r *TextReply) WithHeader(key, value string) *TextReply {
	r.headers.Add(key, value)
	return r
}

// Build encodes the text and forces the plain-text content type.
func (r *TextReply) Build(_ context.Context, _ *RequestDescriptor, _ io.Reader) (*Response, error) {
	return &Response{
		StatusCode: r.status,
		Headers:    mergeContentType(r.headers, ContentTypeText),
		Body:       []byte(r.text),
	}, nil
}

// BytesReply responds with a raw byte body and an explicit content type.
type BytesReply struct {
	data        []byte
	contentType string
	status      int
	headers     http.Header
}

// Bytes creates a reply carrying the byte sequence verbatim. contentType is
// required; Build fails when it is empty.
func Bytes(data []byte, contentType string) *BytesReply {
	return &BytesReply{data: data, contentType: contentType, status: http.StatusOK, headers: make(http.Header)}
}

// WithStatus sets the response status code.
func (r *BytesReply) WithStatus(status int) *BytesReply {
	r.status = status
	return r
}

// WithHeader adds a response header.
func (r *BytesReply) WithHeader(key, value string) *BytesReply {
	r.headers.Add(key, value)
	return r
}

// Build returns the bytes untransformed with the explicit content type
// forced into the headers.
func (r *BytesReply) Build(_ context.Context, _ *RequestDescriptor, _ io.Reader) (*Response, error) {
	if r.contentType == "" {
		return nil, errors.New("bytes reply requires a content type")
	}
	return &Response{
		StatusCode: r.status,
		Headers:    mergeContentType(r.headers, r.contentType),
		Body:       r.data,
	}, nil
}

// buildJSON serializes v and assembles the response. Nil data serializes to
// a zero-length body.
func buildJSON(v any, status int, headers http.Header) (*Response, error) {
	var body []byte
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding reply body: %w", err)
		}
		body = data
	}
	return &Response{
		StatusCode: status,
		Headers:    mergeContentType(headers, ContentTypeJSON),
		Body:       body,
	}, nil
}

// mergeContentType clones the user headers and applies the variant's
// content type last, so it wins over any conflicting value.
func mergeContentType(headers http.Header, contentType string) http.Header {
	merged := headers.Clone()
	if merged == nil {
		merged = make(http.Header)
	}
	merged.Set("Content-Type", contentType)
	return merged
}
