package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var orSym = &orSymbol{}

// Or returns the short-circuiting disjunction: {op: "or", values: [...]}.
// Elements evaluate left to right; the first truthy result stops
// evaluation and the remaining sub-trees never run.
func Or() eval.Symbol { return orSym }

const orName = "or"

type orSymbol struct{}

func (s *orSymbol) String() string { return orName }

func (s *orSymbol) Params() eval.Params {
	return eval.CommutativeParams("operands, combined left to right")
}

func (s *orSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &orOp{Core: eval.NewCore(orName, node)}, nil
}

type orOp struct{ eval.Core }

func (o *orOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	vs := o.Arg("values")
	if vs.Type != ir.ArrayType {
		return nil, fmt.Errorf("values must be an array, got %s: %w", vs.Type, eval.ErrValidation)
	}
	for _, v := range vs.Values {
		ev, err := f(v, env)
		if err != nil {
			return nil, err
		}
		if ir.Truth(ev) {
			return ir.FromBool(true), nil
		}
	}
	return ir.FromBool(false), nil
}

func (o *orOp) Render(f eval.RenderFunc) (string, error) {
	return renderJoin(o.Core, o.Arg("values"), " || ", f)
}
