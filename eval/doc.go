// Package eval is the ramp interpreter core: the operator abstraction,
// the name-to-symbol registry, and the recursive evaluator.
//
// An operator type is a Symbol; evaluating an operator node looks its
// name up in the registry, validates required parameters, constructs an
// Op instance from the raw node and runs it. Ordinary operators embed the
// eager Simple variant (or the Unary, Binary and Commutative shapes on
// top of it) and receive fully resolved arguments; control-flow operators
// embed Core and call the EvalFunc callback selectively, which is what
// lets a conditional skip its untaken branch.
//
// The registry is populated during init — typically by importing
// github.com/ramp-lang/go-ramp/builtin for side effect — and is read-only
// while evaluations run. New operators register through the same
// Register call; no core change is needed.
//
// # Related Packages
//
//   - github.com/ramp-lang/go-ramp/builtin - the built-in operator library
//   - github.com/ramp-lang/go-ramp/decompile - rendering trees to source text
package eval
