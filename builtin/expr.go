package builtin

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var exprSym = &exprSymbol{}

// Expr returns the expression escape hatch: {op: "expr", expr: src}
// compiles src with expr-lang and runs it sandboxed against the
// environment's variables plus the evaluated "vars" argument. The
// environment must expose a Snapshot (MapEnv does) for its variables to
// be visible.
func Expr() eval.Symbol { return exprSym }

const exprOpName = "expr"

type exprSymbol struct{}

func (s *exprSymbol) String() string { return exprOpName }

func (s *exprSymbol) Params() eval.Params {
	return eval.Params{
		"expr": {Required: true, Description: "expr-lang source text"},
		"vars": {Description: "object of extra variables visible to the expression"},
	}
}

func (s *exprSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &exprOp{Core: eval.NewCore(exprOpName, node)}, nil
}

type snapshotter interface {
	Snapshot() map[string]*ir.Node
}

type exprOp struct{ eval.Core }

func (o *exprOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	src := o.Arg("expr")
	if src.Type != ir.StringType {
		return nil, fmt.Errorf("expr must be a string, got %s: %w", src.Type, eval.ErrValidation)
	}
	vars := map[string]any{}
	if snap, ok := env.(snapshotter); ok {
		for k, v := range snap.Snapshot() {
			vars[k] = ir.ToAny(v)
		}
	}
	if vn := o.Arg("vars"); vn != nil {
		ev, err := f(vn, env)
		if err != nil {
			return nil, err
		}
		if ev.Type != ir.ObjectType {
			return nil, fmt.Errorf("vars must be an object, got %s: %w", ev.Type, eval.ErrValidation)
		}
		for i, field := range ev.Fields {
			vars[field] = ir.ToAny(ev.Values[i])
		}
	}
	prg, err := expr.Compile(src.String)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src.String, err)
	}
	res, err := expr.Run(prg, vars)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src.String, err)
	}
	return ir.FromAny(res)
}
