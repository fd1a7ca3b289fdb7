package query

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/qube-ai/nexus/schema"
)

// celFilter compiles and caches risk filter expressions. The environment
// exposes a single variable, "risk", bound to a map of the risk's fields.
// Programs are cached by expression text; the cache is unbounded, which is
// acceptable because expressions come from a small set of host-defined
// filters rather than arbitrary end users.
type celFilter struct {
	env *cel.Env

	mu       sync.RWMutex
	programs map[string]cel.Program
}

func newCELFilter() *celFilter {
	env, err := cel.NewEnv(
		cel.Variable("risk", cel.DynType),
	)
	if err != nil {
		// The environment is built from constants; failure here is a
		// programming error, not an input error.
		panic(fmt.Sprintf("query: failed to create CEL environment: %v", err))
	}
	return &celFilter{
		env:      env,
		programs: make(map[string]cel.Program),
	}
}

type compiledExpr struct {
	prg cel.Program
}

// compile parses and checks the expression, returning a cached program when
// the same text has been compiled before.
func (f *celFilter) compile(expr string) (*compiledExpr, error) {
	f.mu.RLock()
	prg, ok := f.programs[expr]
	f.mu.RUnlock()
	if ok {
		return &compiledExpr{prg: prg}, nil
	}

	ast, issues := f.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	if ast.OutputType() != cel.BoolType && ast.OutputType() != cel.DynType {
		return nil, fmt.Errorf("expression must evaluate to bool, got %s", ast.OutputType())
	}

	prg, err := f.env.Program(ast)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.programs[expr] = prg
	f.mu.Unlock()

	return &compiledExpr{prg: prg}, nil
}

// eval runs the program against one risk.
func (c *compiledExpr) eval(r schema.Risk) (bool, error) {
	out, _, err := c.prg.Eval(map[string]any{
		"risk": riskActivation(r),
	})
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T, want bool", out.Value())
	}
	return b, nil
}

// riskActivation exposes the filterable risk fields to CEL.
func riskActivation(r schema.Risk) map[string]any {
	return map[string]any{
		"id":          r.ID,
		"name":        r.Name,
		"description": r.Description,
		"tag":         r.Tag,
		"type":        r.Type,
		"taxonomy":    r.Taxonomy,
		"group":       r.Group,
		"concern":     r.Concern,
		"descriptor":  r.Descriptor,
	}
}
