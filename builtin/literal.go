package builtin

import (
	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var literalSym = &literalSymbol{}

// Literal returns the quoting operator: {op: "literal", value: v}
// evaluates to v exactly as written, nested operator nodes included.
func Literal() eval.Symbol { return literalSym }

const literalName = "literal"

type literalSymbol struct{}

func (s *literalSymbol) String() string { return literalName }

func (s *literalSymbol) Params() eval.Params {
	return eval.Params{
		"value": {Required: true, Description: "value returned verbatim, without evaluation"},
	}
}

func (s *literalSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &literalOp{Core: eval.NewCore(literalName, node)}, nil
}

type literalOp struct{ eval.Core }

func (o *literalOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	return o.Arg("value"), nil
}

func (o *literalOp) Render(f eval.RenderFunc) (string, error) {
	return f(o.Arg("value"))
}
