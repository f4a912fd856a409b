package builtin

import (
	"fmt"
	"strings"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var andSym = &andSymbol{}

// And returns the short-circuiting conjunction: {op: "and", values:
// [...]}. Elements evaluate left to right; the first falsy result stops
// evaluation and the remaining sub-trees never run.
func And() eval.Symbol { return andSym }

const andName = "and"

type andSymbol struct{}

func (s *andSymbol) String() string { return andName }

func (s *andSymbol) Params() eval.Params {
	return eval.CommutativeParams("operands, combined left to right")
}

func (s *andSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &andOp{Core: eval.NewCore(andName, node)}, nil
}

type andOp struct{ eval.Core }

func (o *andOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	vs := o.Arg("values")
	if vs.Type != ir.ArrayType {
		return nil, fmt.Errorf("values must be an array, got %s: %w", vs.Type, eval.ErrValidation)
	}
	for _, v := range vs.Values {
		ev, err := f(v, env)
		if err != nil {
			return nil, err
		}
		if !ir.Truth(ev) {
			return ir.FromBool(false), nil
		}
	}
	return ir.FromBool(true), nil
}

func (o *andOp) Render(f eval.RenderFunc) (string, error) {
	return renderJoin(o.Core, o.Arg("values"), " && ", f)
}

// renderJoin renders the elements of a boolean combinator's raw values
// array joined by the combinator's token, falling back to call syntax
// when the array itself is computed.
func renderJoin(core eval.Core, vs *ir.Node, sep string, f eval.RenderFunc) (string, error) {
	if vs.Type != ir.ArrayType {
		return core.Render(f)
	}
	parts := make([]string, len(vs.Values))
	for i, v := range vs.Values {
		s, err := f(v)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}
