package eval

import (
	"fmt"
	"strings"

	"github.com/ramp-lang/go-ramp/ir"
)

// Commutative is the N-ary shape on top of the eager variant: one "values"
// array argument, rendered as the operator name applied to the
// comma-joined elements. The name denotes only the fixed shape; a
// concrete operator's computation may still be order-dependent.
type Commutative struct {
	Core
	compute func(vs []*ir.Node) (*ir.Node, error)
}

func NewCommutative(name string, node *ir.Node, compute func(vs []*ir.Node) (*ir.Node, error)) Commutative {
	return Commutative{Core: NewCore(name, node), compute: compute}
}

func (c Commutative) Eval(env Env, f EvalFunc) (*ir.Node, error) {
	vs, err := f(c.Arg("values"), env)
	if err != nil {
		return nil, err
	}
	if vs.Type != ir.ArrayType {
		return nil, fmt.Errorf("%s: values must be an array, got %s: %w", c, vs.Type, ErrValidation)
	}
	return c.compute(vs.Values)
}

func (c Commutative) Render(f RenderFunc) (string, error) {
	var b strings.Builder
	b.WriteString(c.String())
	b.WriteByte('(')
	vs := c.Arg("values")
	if vs.Type == ir.ArrayType {
		for i, v := range vs.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			s, err := f(v)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	} else {
		// the array itself is computed by a nested operator
		s, err := f(vs)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return b.String(), nil
}
