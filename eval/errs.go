package eval

import "errors"

var (
	// ErrUnknownOperator reports an operator node whose name has no
	// registered symbol.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrValidation reports an operator node whose argument map is
	// malformed, most commonly a missing required parameter.
	ErrValidation = errors.New("invalid operator arguments")

	// ErrUnknownVariable reports an environment lookup for a name the
	// environment does not hold.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrStructure reports a tree nested beyond the evaluator's depth
	// limit, which a cyclic input also triggers.
	ErrStructure = errors.New("tree exceeds depth limit")
)
