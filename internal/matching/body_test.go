package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBody(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{
			name:     "map key order irrelevant",
			expected: map[string]any{"a": 1, "b": 2},
			actual:   map[string]any{"b": 2.0, "a": 1.0},
			want:     true,
		},
		{
			name:     "map value mismatch",
			expected: map[string]any{"a": 1},
			actual:   map[string]any{"a": 2.0},
			want:     false,
		},
		{
			name:     "map extra key fails",
			expected: map[string]any{"a": 1},
			actual:   map[string]any{"a": 1.0, "b": 2.0},
			want:     false,
		},
		{
			name:     "slice order sensitive",
			expected: []any{1, 2, 3},
			actual:   []any{3.0, 2.0, 1.0},
			want:     false,
		},
		{
			name:     "slice same order matches",
			expected: []any{1, 2, 3},
			actual:   []any{1.0, 2.0, 3.0},
			want:     true,
		},
		{
			name:     "nested structures compared recursively",
			expected: map[string]any{"user": map[string]any{"id": 1, "tags": []any{"a", "b"}}},
			actual:   map[string]any{"user": map[string]any{"tags": []any{"a", "b"}, "id": 1.0}},
			want:     true,
		},
		{
			name:     "nested slice order still matters",
			expected: map[string]any{"tags": []any{"a", "b"}},
			actual:   map[string]any{"tags": []any{"b", "a"}},
			want:     false,
		},
		{
			name:     "scalar equality",
			expected: "hello",
			actual:   "hello",
			want:     true,
		},
		{
			name:     "numeric coercion int vs float",
			expected: 42,
			actual:   42.0,
			want:     true,
		},
		{
			name:     "go-typed map canonicalizes",
			expected: map[string]int{"a": 1},
			actual:   map[string]any{"a": 1.0},
			want:     true,
		},
		{
			name: "struct expectation compares by JSON shape",
			expected: struct {
				ID int `json:"id"`
			}{ID: 7},
			actual: map[string]any{"id": 7.0},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchBody(tt.expected, tt.actual))
		})
	}
}

func TestValueEqualNil(t *testing.T) {
	assert.True(t, ValueEqual(nil, nil))
	assert.False(t, ValueEqual(nil, "x"))
	assert.False(t, ValueEqual("x", nil))
}
