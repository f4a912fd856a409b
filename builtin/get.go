package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var getSym = &getSymbol{}

// Get returns the variable-resolution operator: {op: "get", var: name}.
func Get() eval.Symbol { return getSym }

const getName = "get"

type getSymbol struct{}

func (s *getSymbol) String() string { return getName }

func (s *getSymbol) Params() eval.Params {
	return eval.Params{
		"var": {Required: true, Description: "name of the variable to resolve"},
	}
}

func (s *getSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &getOp{Core: eval.NewCore(getName, node)}, nil
}

type getOp struct{ eval.Core }

func (o *getOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	name, err := f(o.Arg("var"), env)
	if err != nil {
		return nil, err
	}
	if name.Type != ir.StringType {
		return nil, fmt.Errorf("var must be a string, got %s: %w", name.Type, eval.ErrValidation)
	}
	return env.Resolve(name.String)
}

// a get renders as the bare variable name
func (o *getOp) Render(f eval.RenderFunc) (string, error) {
	v := o.Arg("var")
	if v.Type == ir.StringType {
		return v.String, nil
	}
	return o.Core.Render(f)
}
