package eval

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ramp-lang/go-ramp/debug"
	"github.com/ramp-lang/go-ramp/ir"
)

// DefaultMaxDepth bounds tree nesting. Legitimate decision trees are
// shallow; the limit exists so a cyclic or adversarially deep input fails
// with ErrStructure instead of exhausting the stack.
const DefaultMaxDepth = 1000

// Evaluator is the recursive tree-walking driver. It holds no
// per-evaluation state, so one Evaluator may serve concurrent Eval calls
// on independent trees.
type Evaluator struct {
	maxDepth int
}

type Option func(*Evaluator)

func MaxDepth(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates node against env with a default Evaluator.
func Eval(node *ir.Node, env Env) (*ir.Node, error) {
	return New().Eval(node, env)
}

// Eval resolves one tree: operator nodes dispatch through the registry,
// plain containers evaluate element-wise into structurally identical
// containers, and primitives evaluate to themselves.
func (e *Evaluator) Eval(node *ir.Node, env Env) (*ir.Node, error) {
	return e.eval(node, env, 0)
}

func (e *Evaluator) eval(node *ir.Node, env Env, depth int) (*ir.Node, error) {
	if node == nil {
		return ir.Null(), nil
	}
	if depth > e.maxDepth {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrStructure)
	}
	if node.IsOp() {
		return e.evalOp(node, env, depth)
	}
	switch node.Type {
	case ir.ObjectType:
		res := ir.NewObject()
		for i, field := range node.Fields {
			v, err := e.eval(node.Values[i], env, depth+1)
			if err != nil {
				return nil, err
			}
			res.Set(field, v)
		}
		return res, nil
	case ir.ArrayType:
		vs := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			ev, err := e.eval(v, env, depth+1)
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return ir.FromSlice(vs), nil
	default:
		return node, nil
	}
}

func (e *Evaluator) evalOp(node *ir.Node, env Env, depth int) (*ir.Node, error) {
	name := node.OpName()
	sym := Lookup(name)
	if sym == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownOperator)
	}
	// required parameters are checked before construction and before
	// any child evaluates, so a malformed node fails without side
	// effects
	if err := Validate(sym, node); err != nil {
		return nil, err
	}
	o, err := sym.Instance(node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if debug.Eval() {
		debug.Logf("eval %s at depth %d\n", name, depth)
	}
	f := func(n *ir.Node, env Env) (*ir.Node, error) {
		return e.eval(n, env, depth+1)
	}
	res, err := o.Eval(env, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

// Validate checks node against sym's declared parameters. Evaluation and
// decompilation both run it before constructing an instance, so Instance
// and the per-op methods may assume required arguments are present.
func Validate(sym Symbol, node *ir.Node) error {
	params := sym.Params()
	for _, name := range slices.Sorted(maps.Keys(params)) {
		if !params[name].Required {
			continue
		}
		if ir.Get(node, name) == nil {
			return fmt.Errorf("%s: missing required parameter %q: %w", sym, name, ErrValidation)
		}
	}
	return nil
}
