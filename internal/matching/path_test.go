package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "already normalized", path: "/users", want: "/users"},
		{name: "missing leading slash", path: "users", want: "/users"},
		{name: "empty path", path: "", want: "/"},
		{name: "root", path: "/", want: "/"},
		{name: "strips query string", path: "/users?active=true", want: "/users"},
		{name: "nested path", path: "api/v1/users", want: "/api/v1/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     bool
	}{
		{name: "exact match", expected: "/users", actual: "/users", want: true},
		{name: "normalizes expected side", expected: "users", actual: "/users", want: true},
		{name: "no prefix matching", expected: "/users", actual: "/users/123", want: false},
		{name: "no partial segment", expected: "/users", actual: "/user", want: false},
		{name: "deeper path does not match parent", expected: "/users/123", actual: "/users", want: false},
		{name: "root", expected: "/", actual: "/", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPath(tt.expected, tt.actual))
		})
	}
}

func TestMatchMethod(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     bool
	}{
		{name: "same case", expected: "GET", actual: "GET", want: true},
		{name: "case insensitive", expected: "post", actual: "POST", want: true},
		{name: "mismatch", expected: "post", actual: "GET", want: false},
		{name: "empty matches anything", expected: "", actual: "DELETE", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchMethod(tt.expected, tt.actual))
		})
	}
}
