package eval

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/ir"
)

// Unary is the one-argument shape on top of the eager variant: the single
// operand lives under "value" and the default rendering prepends the
// operator's prefix token to the rendered operand.
type Unary struct {
	Core
	prefix  string
	compute func(v *ir.Node) (*ir.Node, error)
}

func NewUnary(name, prefix string, node *ir.Node, compute func(v *ir.Node) (*ir.Node, error)) Unary {
	return Unary{Core: NewCore(name, node), prefix: prefix, compute: compute}
}

func (u Unary) Eval(env Env, f EvalFunc) (*ir.Node, error) {
	v, err := f(u.Arg("value"), env)
	if err != nil {
		return nil, err
	}
	return u.compute(v)
}

func (u Unary) Render(f RenderFunc) (string, error) {
	s, err := f(u.Arg("value"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s", u.prefix, s), nil
}
