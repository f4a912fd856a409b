package builtin

import (
	"fmt"
	"math"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var negativeSym = &negativeSymbol{}

// Negative returns the numeric negation operator, rendered with the "-"
// prefix.
func Negative() eval.Symbol { return negativeSym }

const negativeName = "negative"

type negativeSymbol struct{}

func (s *negativeSymbol) String() string { return negativeName }

func (s *negativeSymbol) Params() eval.Params {
	return eval.UnaryParams("number to negate")
}

func (s *negativeSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewUnary(negativeName, "-", node, func(v *ir.Node) (*ir.Node, error) {
		n, err := toNum(v)
		if err != nil {
			return nil, err
		}
		n.i, n.f = -n.i, -n.f
		return n.node(), nil
	}), nil
}

var modSym = &modSymbol{}

// Mod returns the integer remainder operator, rendered with the "%"
// infix.
func Mod() eval.Symbol { return modSym }

const modName = "mod"

type modSymbol struct{}

func (s *modSymbol) String() string { return modName }

func (s *modSymbol) Params() eval.Params {
	return eval.BinaryParams("dividend, an integer", "divisor, a non-zero integer")
}

func (s *modSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewBinary(modName, "%", node, func(left, right *ir.Node) (*ir.Node, error) {
		l, lok := left.AsInt()
		r, rok := right.AsInt()
		if !lok || !rok {
			return nil, fmt.Errorf("mod needs integer operands")
		}
		if r == 0 {
			return nil, fmt.Errorf("mod by zero")
		}
		return ir.FromInt(l % r), nil
	}), nil
}

var divideSym = &divideSymbol{}

// Divide returns the division operator, rendered with the "/" infix. The
// result is always a float, integer operands included.
func Divide() eval.Symbol { return divideSym }

const divideName = "divide"

type divideSymbol struct{}

func (s *divideSymbol) String() string { return divideName }

func (s *divideSymbol) Params() eval.Params {
	return eval.BinaryParams("dividend", "divisor, non-zero")
}

func (s *divideSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewBinary(divideName, "/", node, func(left, right *ir.Node) (*ir.Node, error) {
		l, err := toNum(left)
		if err != nil {
			return nil, err
		}
		r, err := toNum(right)
		if err != nil {
			return nil, err
		}
		if r.f == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return ir.FromFloat(l.f / r.f), nil
	}), nil
}

var roundSym = &roundSymbol{}

// Round returns the round-half-away-from-zero operator.
func Round() eval.Symbol { return roundSym }

const roundName = "round"

type roundSymbol struct{}

func (s *roundSymbol) String() string { return roundName }

func (s *roundSymbol) Params() eval.Params {
	return eval.UnaryParams("number to round to the nearest integer")
}

func (s *roundSymbol) Instance(node *ir.Node) (eval.Op, error) {
	o := &roundOp{}
	o.Simple = eval.NewSimple(roundName, node, o.compute)
	return o, nil
}

type roundOp struct{ eval.Simple }

func (o *roundOp) compute(args *ir.Node) (*ir.Node, error) {
	n, err := toNum(ir.Get(args, "value"))
	if err != nil {
		return nil, err
	}
	if n.isInt {
		return n.node(), nil
	}
	return ir.FromInt(int64(math.Round(n.f))), nil
}
