package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/debug"
	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var condSym = &condSymbol{}

// Cond returns the conditional operator: {op: "cond", if: c, then: t,
// else: e}. Only the taken branch evaluates; a missing else yields null.
func Cond() eval.Symbol { return condSym }

const condName = "cond"

type condSymbol struct{}

func (s *condSymbol) String() string { return condName }

func (s *condSymbol) Params() eval.Params {
	return eval.Params{
		"if":   {Required: true, Description: "condition, judged by DSL truthiness"},
		"then": {Required: true, Description: "branch evaluated when the condition holds"},
		"else": {Description: "branch evaluated otherwise, null when absent"},
	}
}

func (s *condSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return &condOp{Core: eval.NewCore(condName, node)}, nil
}

type condOp struct{ eval.Core }

func (o *condOp) Eval(env eval.Env, f eval.EvalFunc) (*ir.Node, error) {
	c, err := f(o.Arg("if"), env)
	if err != nil {
		return nil, err
	}
	if debug.Op() {
		debug.Logf("cond branch taken: %v\n", ir.Truth(c))
	}
	if ir.Truth(c) {
		return f(o.Arg("then"), env)
	}
	if e := o.Arg("else"); e != nil {
		return f(e, env)
	}
	return ir.Null(), nil
}

func (o *condOp) Render(f eval.RenderFunc) (string, error) {
	c, err := f(o.Arg("if"))
	if err != nil {
		return "", err
	}
	t, err := f(o.Arg("then"))
	if err != nil {
		return "", err
	}
	res := fmt.Sprintf("if %s then %s", c, t)
	if e := o.Arg("else"); e != nil {
		s, err := f(e)
		if err != nil {
			return "", err
		}
		res += fmt.Sprintf(" else %s", s)
	}
	return res, nil
}
