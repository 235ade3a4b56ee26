// Package stubtest provides test helpers around a stub registry: a wired
// *http.Client and call assertions over the registry's request history.
package stubtest

import (
	"net/http"
	"testing"

	"github.com/stubtrip/stubtrip/pkg/stub"
	"github.com/stubtrip/stubtrip/pkg/transport"
)

// Client couples a registry with an http.Client using the stub transport.
type Client struct {
	t        testing.TB
	registry *stub.Registry
	client   *http.Client
}

// New creates a registry and a client wired to it. The registry is closed
// when the test completes.
func New(t testing.TB) *Client {
	t.Helper()
	registry := stub.New()
	t.Cleanup(func() { _ = registry.Close() })
	return &Client{
		t:        t,
		registry: registry,
		client:   transport.Client(registry),
	}
}

// Registry returns the underlying registry for direct registration.
func (c *Client) Registry() *stub.Registry {
	return c.registry
}

// HTTPClient returns the wired *http.Client. Hand it to the code under
// test in place of its real client.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

// On registers a stub on the underlying registry.
func (c *Client) On(m stub.Matcher, r stub.Reply) *stub.Stub {
	return c.registry.On(m, r)
}

// OnPath registers a Route stub for the given path.
func (c *Client) OnPath(path string, r stub.Reply) *stub.Stub {
	return c.registry.OnPath(path, r)
}

// AssertCalled asserts that method+path was served at least once.
func (c *Client) AssertCalled(method, path string) {
	c.t.Helper()
	if n := c.countCalls(method, path); n == 0 {
		c.t.Errorf("expected %s %s to be called, but it was not", method, path)
	}
}

// AssertCalledTimes asserts that method+path was served exactly n times.
func (c *Client) AssertCalledTimes(method, path string, times int) {
	c.t.Helper()
	if n := c.countCalls(method, path); n != times {
		c.t.Errorf("expected %s %s to be called %d times, but was called %d times",
			method, path, times, n)
	}
}

// AssertNotCalled asserts that method+path was never served.
func (c *Client) AssertNotCalled(method, path string) {
	c.t.Helper()
	if n := c.countCalls(method, path); n > 0 {
		c.t.Errorf("expected %s %s to not be called, but it was called %d times",
			method, path, n)
	}
}

// countCalls counts served requests for a method/path pair.
func (c *Client) countCalls(method, path string) int {
	count := 0
	for _, r := range c.registry.Requests() {
		if r.Method == method && r.Path == path {
			count++
		}
	}
	return count
}
