package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/ir"
)

// num is the arithmetic working form of a number node. Integer inputs
// stay integral so int arithmetic does not silently pick up float
// representation.
type num struct {
	i     int64
	f     float64
	isInt bool
}

func toNum(v *ir.Node) (num, error) {
	if v == nil {
		return num{}, fmt.Errorf("expected a number, got nothing")
	}
	if v.Type != ir.NumberType {
		return num{}, fmt.Errorf("expected a number, got %s", v.Type)
	}
	if v.Int64 != nil {
		return num{i: *v.Int64, f: float64(*v.Int64), isInt: true}, nil
	}
	f, _ := v.AsFloat()
	return num{f: f}, nil
}

func (n num) node() *ir.Node {
	if n.isInt {
		return ir.FromInt(n.i)
	}
	return ir.FromFloat(n.f)
}

func floatArg(args *ir.Node, field string, def float64) (float64, error) {
	v := ir.Get(args, field)
	if v == nil {
		return def, nil
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, fmt.Errorf("%s must be a number, got %s", field, v.Type)
	}
	return f, nil
}

func intArg(args *ir.Node, field string) (int64, error) {
	v := ir.Get(args, field)
	i, ok := v.AsInt()
	if !ok {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return i, nil
}
