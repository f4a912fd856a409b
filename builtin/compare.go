package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var (
	gtSym  = &orderSymbol{name: "greaterThan", infix: ">", keep: func(c int) bool { return c > 0 }}
	ltSym  = &orderSymbol{name: "lessThan", infix: "<", keep: func(c int) bool { return c < 0 }}
	gteSym = &orderSymbol{name: "greaterThanOrEqualTo", infix: ">=", keep: func(c int) bool { return c >= 0 }}
	lteSym = &orderSymbol{name: "lessThanOrEqualTo", infix: "<=", keep: func(c int) bool { return c <= 0 }}
)

func GreaterThan() eval.Symbol          { return gtSym }
func LessThan() eval.Symbol             { return ltSym }
func GreaterThanOrEqualTo() eval.Symbol { return gteSym }
func LessThanOrEqualTo() eval.Symbol    { return lteSym }

// orderSymbol covers the four ordering comparisons. Orderings are defined
// within numbers and within strings; mixing types is an error rather
// than a silent false.
type orderSymbol struct {
	name  string
	infix string
	keep  func(c int) bool
}

func (s *orderSymbol) String() string { return s.name }

func (s *orderSymbol) Params() eval.Params {
	return eval.BinaryParams("left operand", "right operand")
}

func (s *orderSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewBinary(s.name, s.infix, node, func(left, right *ir.Node) (*ir.Node, error) {
		if left.Type != right.Type && !(left.Type == ir.NumberType && right.Type == ir.NumberType) {
			return nil, fmt.Errorf("cannot order %s against %s", left.Type, right.Type)
		}
		switch left.Type {
		case ir.NumberType, ir.StringType:
			return ir.FromBool(s.keep(ir.Compare(left, right))), nil
		default:
			return nil, fmt.Errorf("cannot order values of type %s", left.Type)
		}
	}), nil
}
