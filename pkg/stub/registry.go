package stub

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stubtrip/stubtrip/pkg/logging"
)

// Stub is a registered (matcher, reply) pair.
type Stub struct {
	// ID uniquely identifies the stub in logs and the request history.
	ID string

	// Matcher decides whether this stub serves a given request.
	Matcher Matcher

	// Reply produces the response when the matcher accepts.
	Reply Reply
}

// ServedRequest records one request served by the registry.
type ServedRequest struct {
	ID     string
	Method string
	Path   string
	StubID string
	At     time.Time
}

// Registry holds an ordered, append-only list of stubs and resolves
// incoming requests against them. Create one per test and discard it at
// scope end; instances share no state.
type Registry struct {
	log     *slog.Logger
	stubs   []*Stub
	history []ServedRequest
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for match/miss debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(g *Registry) {
		g.log = log
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	g := &Registry{log: logging.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// On registers a stub. Registration order is significant: Fetch scans the
// registrations last-first, so a stub registered later overrides any
// earlier stub matching the same requests.
func (g *Registry) On(m Matcher, r Reply) *Stub {
	s := &Stub{
		ID:      uuid.NewString(),
		Matcher: m,
		Reply:   r,
	}
	g.stubs = append(g.stubs, s)
	g.log.Debug("stub registered", "id", s.ID, "matcher", m.String())
	return s
}

// OnPath is shorthand for registering a Route matcher:
//
//	reg.OnPath("/users", stub.JSON(users))
func (g *Registry) OnPath(path string, r Reply) *Stub {
	return g.On(Path(path), r)
}

// Fetch resolves a request against the registered stubs. It scans the
// registrations in reverse order and the first matcher accepting the
// descriptor produces the response; remaining registrations are never
// consulted. body is a reader over the outgoing request body, handed to
// the matched reply exactly once (nil when the request had none).
//
// When no stub matches, Fetch returns a *NoMatchError. Reply build errors
// propagate unmodified. Failed fetches never mutate the registration list.
func (g *Registry) Fetch(ctx context.Context, d *RequestDescriptor, body io.Reader) (*Response, error) {
	for i := len(g.stubs) - 1; i >= 0; i-- {
		s := g.stubs[i]
		if !s.Matcher.Matches(d) {
			continue
		}
		g.log.Debug("stub matched", "id", s.ID, "method", d.Method, "path", d.Path)
		resp, err := s.Reply.Build(ctx, d, body)
		if err != nil {
			return nil, err
		}
		g.history = append(g.history, ServedRequest{
			ID:     uuid.NewString(),
			Method: d.Method,
			Path:   d.Path,
			StubID: s.ID,
			At:     time.Now(),
		})
		return resp, nil
	}

	g.log.Debug("no stub matched", "method", d.Method, "path", d.Path, "stubs", len(g.stubs))
	return nil, g.noMatchError(d)
}

// noMatchError assembles the diagnostic listing in registration order.
func (g *Registry) noMatchError(d *RequestDescriptor) *NoMatchError {
	e := &NoMatchError{
		Method:     d.Method,
		Path:       d.Path,
		Registered: make([]string, len(g.stubs)),
	}
	for i, s := range g.stubs {
		e.Registered[i] = s.Matcher.String()
		if ex, ok := s.Matcher.(explainer); ok {
			if reason, partial := ex.explain(d); partial {
				e.NearMisses = append(e.NearMisses, s.Matcher.String()+": "+reason)
			}
		}
	}
	return e
}

// Requests returns the requests served so far, oldest first.
func (g *Registry) Requests() []ServedRequest {
	out := make([]ServedRequest, len(g.history))
	copy(out, g.history)
	return out
}

// Reset clears all registrations and the request history. Use between test
// cases sharing a registry.
func (g *Registry) Reset() {
	g.stubs = nil
	g.history = nil
}

// Close releases nothing, since the registry holds no external handles,
// and is safe to call any number of times. It exists so the registry satisfies
// transport lifecycle contracts expecting an io.Closer.
func (g *Registry) Close() error {
	return nil
}
