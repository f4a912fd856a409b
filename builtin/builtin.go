// Package builtin is the standard ramp operator library. Importing it
// (usually for side effect) registers every built-in symbol; each
// operator is otherwise an ordinary client of the eval extension
// surface.
package builtin

import "github.com/ramp-lang/go-ramp/eval"

func init() {
	eval.Register(Literal())
	eval.Register(Get())
	eval.Register(Index())
	eval.Register(Length())
	eval.Register(Cond())
	eval.Register(Coalesce())
	eval.Register(And())
	eval.Register(Or())
	eval.Register(Not())
	eval.Register(Equals())
	eval.Register(GreaterThan())
	eval.Register(LessThan())
	eval.Register(GreaterThanOrEqualTo())
	eval.Register(LessThanOrEqualTo())
	eval.Register(Min())
	eval.Register(Max())
	eval.Register(Sum())
	eval.Register(Product())
	eval.Register(Negative())
	eval.Register(Mod())
	eval.Register(Divide())
	eval.Register(Round())
	eval.Register(RandomFloat())
	eval.Register(RandomInteger())
	eval.Register(BernoulliTrial())
	eval.Register(UniformChoice())
	eval.Register(WeightedChoice())
	eval.Register(Sample())
	eval.Register(Expr())
}
