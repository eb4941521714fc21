package filter

import (
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/eventorkit/eventor"
)

const dateLayout = "2006-01-02"

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
		customFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	customFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // top level elements of the record
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	var filter CompiledFilter = &exprFilter{
		expression: expression,
		program:    program,
	}
	if len(c.customFuncs) > 0 {
		filter = &customExprFilter{exprFilter: filter.(*exprFilter), funcs: c.customFuncs}
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a record
func (f *exprFilter) Evaluate(record eventor.Node) bool {
	return f.run(createRuntimeEnvironment(record))
}

func (f *exprFilter) run(env map[string]any) bool {
	result, err := expr.Run(f.program, env)
	if err != nil {
		// records the expression cannot be evaluated on do not match
		return false
	}
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// customExprFilter carries functions registered with WithCustomFunctions into
// the runtime environment.
type customExprFilter struct {
	*exprFilter
	funcs map[string]any
}

func (f *customExprFilter) Evaluate(record eventor.Node) bool {
	env := createRuntimeEnvironment(record)
	maps.Copy(env, f.funcs)
	return f.run(env)
}

// createHelperFunctions creates the environment used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 32)
	addHelperFunctions(funcs)
	addRecordFunctions(funcs, eventor.Node{})
	return funcs
}

// addHelperFunctions adds the record independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["daysAhead"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = parseDate
	// String helpers, case insensitive. contains, startsWith and endsWith are
	// expr operators and cannot be redefined as functions.
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// addRecordFunctions adds the helpers reading from record to env
func addRecordFunctions(env map[string]any, record eventor.Node) {
	env["Record"] = map[string]any(record)
	env["text"] = createTextFunc(record)
	env["has"] = createHasFunc(record)
	env["num"] = createNumFunc(record)
	env["date"] = createDateFunc(record)
	env["count"] = createCountFunc(record)
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation.
// Top level child elements of the record are exposed as variables, so
// `Name == "OK Linné"` works next to text("Name").
func createRuntimeEnvironment(record eventor.Node) map[string]any {
	env := make(map[string]any, len(record)+24)
	maps.Copy(env, record)

	addHelperFunctions(env)
	addRecordFunctions(env, record)

	return env
}

// parseDate reads the date part of "yyyy-mm-dd" or "yyyy-mm-dd hh:mm:ss"
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, _ := time.Parse(dateLayout, s)
	return t
}

func createTextFunc(record eventor.Node) func(string) string {
	return func(path string) string {
		s, err := record.Text(path)
		if err != nil {
			return ""
		}
		return s
	}
}

func createHasFunc(record eventor.Node) func(string) bool {
	return func(path string) bool {
		_, err := record.Path(path)
		return err == nil
	}
}

func createNumFunc(record eventor.Node) func(string) float64 {
	return func(path string) float64 {
		s, err := record.Text(path)
		if err != nil {
			return 0
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return n
	}
}

func createDateFunc(record eventor.Node) func(string) time.Time {
	return func(path string) time.Time {
		s, err := record.Text(path)
		if err != nil {
			return time.Time{}
		}
		return parseDate(s)
	}
}

func createCountFunc(record eventor.Node) func(string) int {
	return func(path string) int {
		v, err := record.Path(path)
		if err != nil {
			return 0
		}
		if list, ok := v.([]any); ok {
			return len(list)
		}
		return 1
	}
}
