package eval

import (
	"fmt"
	"strings"

	"github.com/ramp-lang/go-ramp/ir"
)

// Op is one operator instance, built fresh per node evaluation. Eval
// receives the environment and the evaluator's recursion callback; the
// instance already holds its raw, unevaluated arguments, so lazy
// operators call f only on the sub-trees their semantics need. Render
// produces DSL source text for the node, resolving sub-values through f.
type Op interface {
	Eval(env Env, f EvalFunc) (*ir.Node, error)
	Render(f RenderFunc) (string, error)
	String() string
}

// EvalFunc is the evaluator's recursion entry point, handed to each Op.
type EvalFunc func(node *ir.Node, env Env) (*ir.Node, error)

// RenderFunc is the decompiler's recursion entry point, handed to each
// Op's Render.
type RenderFunc func(node *ir.Node) (string, error)

// Core carries the state every operator instance holds: its name and the
// raw operator node. Concrete operators embed it (directly or through
// Simple and the shape types) and get the default call-syntax Render.
type Core struct {
	name string
	node *ir.Node
}

func NewCore(name string, node *ir.Node) Core {
	return Core{name: name, node: node}
}

func (c Core) String() string {
	return c.name
}

// Node returns the raw operator node the instance was built from.
func (c Core) Node() *ir.Node {
	return c.node
}

// Arg returns the named raw argument, nil when absent.
func (c Core) Arg(field string) *ir.Node {
	return ir.Get(c.node, field)
}

// Render is the fallback rendering: the operator name applied in call
// syntax to key=value pairs in the node's document order. Document order
// is stable for a given tree but carries no meaning to evaluation.
func (c Core) Render(f RenderFunc) (string, error) {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte('(')
	first := true
	for i, field := range c.node.Fields {
		if field == ir.OpKey {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		s, err := f(c.node.Values[i])
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s=%s", field, s)
	}
	b.WriteByte(')')
	return b.String(), nil
}
