package builtin

import (
	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var notSym = &notSymbol{}

// Not returns the negation operator, rendered with the "!" prefix.
func Not() eval.Symbol { return notSym }

const notName = "not"

type notSymbol struct{}

func (s *notSymbol) String() string { return notName }

func (s *notSymbol) Params() eval.Params {
	return eval.UnaryParams("value to negate, judged by DSL truthiness")
}

func (s *notSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewUnary(notName, "!", node, func(v *ir.Node) (*ir.Node, error) {
		return ir.FromBool(!ir.Truth(v)), nil
	}), nil
}
