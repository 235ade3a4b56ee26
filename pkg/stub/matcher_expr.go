package stub

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprMatcher evaluates a compiled expr-lang expression against the
// request descriptor.
type exprMatcher struct {
	src     string
	program *vm.Program
}

// Expr compiles a boolean expr-lang expression into a Matcher. The
// expression sees the request as:
//
//	method  string              ("GET", "POST", ...)
//	path    string              ("/users/42")
//	query   map[string][]string (decoded query parameters)
//	body    any                 (parsed request body, nil when absent)
//
// Example:
//
//	m, err := stub.Expr(`method == "POST" && path startsWith "/users"`)
//
// Compilation errors are returned immediately; a registered expression that
// evaluates to a non-boolean at match time is treated as no match.
func Expr(expression string) (Matcher, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling match expression %q: %w", expression, err)
	}
	return &exprMatcher{src: expression, program: program}, nil
}

// MustExpr is like Expr but panics on compilation errors. Intended for
// test code with constant expressions.
func MustExpr(expression string) Matcher {
	m, err := Expr(expression)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *exprMatcher) Matches(d *RequestDescriptor) bool {
	env := map[string]any{
		"method": d.Method,
		"path":   d.Path,
		"query":  map[string][]string(d.Query),
		"body":   d.Body,
	}
	out, err := expr.Run(m.program, env)
	if err != nil {
		return false
	}
	matched, ok := out.(bool)
	return ok && matched
}

func (m *exprMatcher) String() string {
	return "expr " + m.src
}
