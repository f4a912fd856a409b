// Package ramp evaluates data-encoded decision trees: operator nodes
// dispatch through a registry of named operators and run against a
// caller-supplied variable environment. This top-level package bundles
// the pieces with the built-in operator library registered; the
// sub-packages are the real surface.
package ramp

import (
	"github.com/ramp-lang/go-ramp/decompile"
	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"

	_ "github.com/ramp-lang/go-ramp/builtin"
)

// Eval evaluates a tree against env with the built-in operators
// available.
func Eval(node *ir.Node, env eval.Env) (*ir.Node, error) {
	return eval.Eval(node, env)
}

// Render decompiles a tree to DSL source text.
func Render(node *ir.Node) (string, error) {
	return decompile.Render(node)
}
