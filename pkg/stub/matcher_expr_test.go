package stub

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprMatcher(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		descriptor *RequestDescriptor
		want       bool
	}{
		{
			name:       "method and path conjunction",
			expression: `method == "POST" && path == "/users"`,
			descriptor: descriptor("POST", "/users", nil, nil),
			want:       true,
		},
		{
			name:       "method mismatch",
			expression: `method == "POST" && path == "/users"`,
			descriptor: descriptor("GET", "/users", nil, nil),
			want:       false,
		},
		{
			name:       "path prefix",
			expression: `path startsWith "/api/"`,
			descriptor: descriptor("GET", "/api/users", nil, nil),
			want:       true,
		},
		{
			name:       "query access",
			expression: `"true" in query["active"]`,
			descriptor: descriptor("GET", "/users", url.Values{"active": {"true"}}, nil),
			want:       true,
		},
		{
			name:       "body field access",
			expression: `body.name == "alice"`,
			descriptor: descriptor("POST", "/users", nil, map[string]any{"name": "alice"}),
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Expr(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Matches(tt.descriptor))
		})
	}
}

func TestExprCompilationError(t *testing.T) {
	_, err := Expr(`method ==`)
	assert.Error(t, err)
}

func TestExprRuntimeErrorIsNoMatch(t *testing.T) {
	// body is nil here, so the field access fails at run time
	m := MustExpr(`body.name == "alice"`)
	assert.False(t, m.Matches(descriptor("GET", "/users", nil, nil)))
}

func TestMustExprPanics(t *testing.T) {
	assert.Panics(t, func() { MustExpr(`&&`) })
}

func TestExprString(t *testing.T) {
	m := MustExpr(`method == "GET"`)
	assert.Equal(t, `expr method == "GET"`, m.String())
}
