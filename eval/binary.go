package eval

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/ir"
)

// Binary is the two-argument shape on top of the eager variant: operands
// live under "left" and "right" and the default rendering places the
// operator's infix token between them. An empty infix falls back to the
// operator's name.
type Binary struct {
	Core
	infix   string
	compute func(left, right *ir.Node) (*ir.Node, error)
}

func NewBinary(name, infix string, node *ir.Node, compute func(left, right *ir.Node) (*ir.Node, error)) Binary {
	if infix == "" {
		infix = name
	}
	return Binary{Core: NewCore(name, node), infix: infix, compute: compute}
}

func (b Binary) Eval(env Env, f EvalFunc) (*ir.Node, error) {
	left, err := f(b.Arg("left"), env)
	if err != nil {
		return nil, err
	}
	right, err := f(b.Arg("right"), env)
	if err != nil {
		return nil, err
	}
	return b.compute(left, right)
}

func (b Binary) Render(f RenderFunc) (string, error) {
	left, err := f(b.Arg("left"))
	if err != nil {
		return "", err
	}
	right, err := f(b.Arg("right"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, b.infix, right), nil
}
