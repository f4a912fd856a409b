package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var lengthSym = &lengthSymbol{}

// Length returns the size operator for arrays, objects and strings.
func Length() eval.Symbol { return lengthSym }

const lengthName = "length"

type lengthSymbol struct{}

func (s *lengthSymbol) String() string { return lengthName }

func (s *lengthSymbol) Params() eval.Params {
	return eval.UnaryParams("array, object or string to measure")
}

func (s *lengthSymbol) Instance(node *ir.Node) (eval.Op, error) {
	o := &lengthOp{}
	o.Simple = eval.NewSimple(lengthName, node, o.compute)
	return o, nil
}

type lengthOp struct{ eval.Simple }

func (o *lengthOp) compute(args *ir.Node) (*ir.Node, error) {
	v := ir.Get(args, "value")
	switch v.Type {
	case ir.ArrayType:
		return ir.FromInt(int64(len(v.Values))), nil
	case ir.ObjectType:
		return ir.FromInt(int64(len(v.Fields))), nil
	case ir.StringType:
		return ir.FromInt(int64(len(v.String))), nil
	default:
		return nil, fmt.Errorf("cannot take length of %s", v.Type)
	}
}
