package builtin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var coalesceSym = &coalesceSymbol{}

// Coalesce returns the defaulting operator: {op: "coalesce", values:
// [...]} evaluates elements left to right and yields the first non-null
// result. An element whose evaluation fails only on an unknown variable
// counts as null, so callers can write coalesce(get(x), fallback); later
// elements are never evaluated once a value is found.
func Coalesce() eval.Symbol { return coalesceSym }

const coalesceName = "coalesce"

type coalesceSymbol struct{}

func (s *coalesceSymbol) String() string { return coalesceName }

func (s *coalesceSymbol) Params() eval.Params {
	return eval.CommutativeParams("candidate values, first non-null wins")
}

func (s *coalesceSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &coalesceOp{Core: eval.NewCore(coalesceName, node)}, nil
}

type coalesceOp struct{ eval.Core }

func (o *coalesceOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	vs := o.Arg("values")
	if vs.Type != ir.ArrayType {
		return nil, fmt.Errorf("values must be an array, got %s: %w", vs.Type, eval.ErrValidation)
	}
	for _, v := range vs.Values {
		ev, err := f(v, env)
		if err != nil {
			if errors.Is(err, eval.ErrUnknownVariable) {
				continue
			}
			return nil, err
		}
		if ev.Type != ir.NullType {
			return ev, nil
		}
	}
	return ir.Null(), nil
}

func (o *coalesceOp) Render(f eval.RenderFunc) (string, error) {
	vs := o.Arg("values")
	if vs.Type != ir.ArrayType {
		return o.Core.Render(f)
	}
	parts := make([]string, len(vs.Values))
	for i, v := range vs.Values {
		s, err := f(v)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return fmt.Sprintf("%s(%s)", coalesceName, strings.Join(parts, ", ")), nil
}
