package eval

import (
	"github.com/ramp-lang/go-ramp/ir"

	"github.com/ramp-lang/go-ramp/debug"
)

// Simple is the eager operator variant. Before the narrow entry point
// runs, every raw argument is resolved through the evaluator, sub-nodes
// replaced by their results, so the compute function sees plain values
// and never touches the environment or recursion. Operators with
// control-flow semantics must not use it; they embed Core and drive
// EvalFunc themselves.
type Simple struct {
	Core
	compute func(args *ir.Node) (*ir.Node, error)
}

// NewSimple builds an eager instance around compute, which receives the
// fully resolved argument object (the raw node minus the operator tag,
// every value evaluated).
func NewSimple(name string, node *ir.Node, compute func(args *ir.Node) (*ir.Node, error)) Simple {
	return Simple{Core: NewCore(name, node), compute: compute}
}

func (s Simple) Eval(env Env, f EvalFunc) (*ir.Node, error) {
	args, err := evalArgs(s.node, env, f)
	if err != nil {
		return nil, err
	}
	if debug.Op() {
		debug.Logf("%s args %v\n", s.name, args)
	}
	return s.compute(args)
}

// evalArgs resolves every argument of an operator node, preserving field
// order and skipping the operator tag. The resolved map is derived per
// call, never cached.
func evalArgs(node *ir.Node, env Env, f EvalFunc) (*ir.Node, error) {
	res := ir.NewObject()
	for i, field := range node.Fields {
		if field == ir.OpKey {
			continue
		}
		v, err := f(node.Values[i], env)
		if err != nil {
			return nil, err
		}
		res.Set(field, v)
	}
	return res, nil
}
