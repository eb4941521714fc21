package filter

import (
	"context"

	"github.com/s0up4200/eventorkit/eventor"
)

var defaultCompiler = NewExprCompiler(WithCache(100))

// CompileFilter compiles expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Validate reports whether expression compiles
func Validate(expression string) error {
	_, err := defaultCompiler.Compile(expression)
	return err
}

// EvaluateFilters compiles and evaluates several named expressions
func EvaluateFilters(ctx context.Context, expressions map[string]string, records []eventor.Node) (map[string][]eventor.Node, error) {
	m := NewManager(WithCompiler(defaultCompiler))
	if err := m.RegisterFilters(expressions); err != nil {
		return nil, err
	}
	return m.EvaluateAll(ctx, records)
}
