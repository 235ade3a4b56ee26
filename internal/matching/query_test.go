package matching

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchQuery(t *testing.T) {
	tests := []struct {
		name     string
		expected map[string]string
		actual   url.Values
		want     bool
	}{
		{
			name:     "exact set match",
			expected: map[string]string{"active": "true"},
			actual:   url.Values{"active": {"true"}},
			want:     true,
		},
		{
			name:     "empty request query does not match",
			expected: map[string]string{"active": "true"},
			actual:   url.Values{},
			want:     false,
		},
		{
			name:     "extra request key fails",
			expected: map[string]string{"active": "true"},
			actual:   url.Values{"active": {"true"}, "page": {"1"}},
			want:     false,
		},
		{
			name:     "value mismatch fails",
			expected: map[string]string{"active": "true"},
			actual:   url.Values{"active": {"false"}},
			want:     false,
		},
		{
			name:     "missing request key fails",
			expected: map[string]string{"active": "true", "page": "1"},
			actual:   url.Values{"active": {"true"}},
			want:     false,
		},
		{
			name:     "multiple params all match",
			expected: map[string]string{"active": "true", "page": "1"},
			actual:   url.Values{"active": {"true"}, "page": {"1"}},
			want:     true,
		},
		{
			name:     "multi-valued param compares first value",
			expected: map[string]string{"tag": "a"},
			actual:   url.Values{"tag": {"a", "b"}},
			want:     true,
		},
		{
			name:     "empty expected set requires empty query",
			expected: map[string]string{},
			actual:   url.Values{"page": {"1"}},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchQuery(tt.expected, tt.actual))
		})
	}
}
