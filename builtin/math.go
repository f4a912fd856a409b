package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var (
	minSym = &foldSymbol{name: "min", desc: "values to take the minimum of", fold: foldExtremum(-1)}
	maxSym = &foldSymbol{name: "max", desc: "values to take the maximum of", fold: foldExtremum(1)}
	sumSym = &foldSymbol{name: "sum", desc: "numbers to add", fold: foldSum}
	prodSym = &foldSymbol{name: "product", desc: "numbers to multiply", fold: foldProduct}
)

func Min() eval.Symbol     { return minSym }
func Max() eval.Symbol     { return maxSym }
func Sum() eval.Symbol     { return sumSym }
func Product() eval.Symbol { return prodSym }

// foldSymbol covers the commutative-shape numeric reductions.
type foldSymbol struct {
	name string
	desc string
	fold func(vs []*ir.Node) (*ir.Node, error)
}

func (s *foldSymbol) String() string { return s.name }

func (s *foldSymbol) Params() eval.Params {
	return eval.CommutativeParams(s.desc)
}

func (s *foldSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewCommutative(s.name, node, s.fold), nil
}

// foldExtremum keeps the element Compare ranks highest (sign > 0) or
// lowest (sign < 0). Elements must share an orderable type.
func foldExtremum(sign int) func(vs []*ir.Node) (*ir.Node, error) {
	return func(vs []*ir.Node) (*ir.Node, error) {
		if len(vs) == 0 {
			return nil, fmt.Errorf("no values")
		}
		best := vs[0]
		for _, v := range vs[1:] {
			if v.Type != best.Type && !(v.Type == ir.NumberType && best.Type == ir.NumberType) {
				return nil, fmt.Errorf("cannot order %s against %s", v.Type, best.Type)
			}
			if c := ir.Compare(v, best); c*sign > 0 {
				best = v
			}
		}
		return best, nil
	}
}

func foldSum(vs []*ir.Node) (*ir.Node, error) {
	acc := num{isInt: true}
	for _, v := range vs {
		n, err := toNum(v)
		if err != nil {
			return nil, err
		}
		acc = num{
			i:     acc.i + n.i,
			f:     acc.f + n.f,
			isInt: acc.isInt && n.isInt,
		}
	}
	return acc.node(), nil
}

func foldProduct(vs []*ir.Node) (*ir.Node, error) {
	acc := num{i: 1, f: 1, isInt: true}
	for _, v := range vs {
		n, err := toNum(v)
		if err != nil {
			return nil, err
		}
		acc = num{
			i:     acc.i * n.i,
			f:     acc.f * n.f,
			isInt: acc.isInt && n.isInt,
		}
	}
	return acc.node(), nil
}
