package builtin

import (
	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var equalsSym = &equalsSymbol{}

// Equals returns the equality operator, rendered with the "==" infix.
// Values of different types compare unequal without error; numbers
// compare by value across integer and float representations.
func Equals() eval.Symbol { return equalsSym }

const equalsName = "equals"

type equalsSymbol struct{}

func (s *equalsSymbol) String() string { return equalsName }

func (s *equalsSymbol) Params() eval.Params {
	return eval.BinaryParams("left operand", "right operand")
}

func (s *equalsSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewBinary(equalsName, "==", node, func(left, right *ir.Node) (*ir.Node, error) {
		return ir.FromBool(ir.Equal(left, right)), nil
	}), nil
}
