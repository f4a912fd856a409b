package eval

import "github.com/ramp-lang/go-ramp/ir"

// Symbol is an operator type: one name in the registry together with its
// static parameter spec and the constructor that builds instances from a
// raw operator node.
type Symbol interface {
	String() string
	Params() Params
	Instance(node *ir.Node) (Op, error)
}

// Param is the static metadata of one named argument.
type Param struct {
	Required    bool
	Description string
}

// Params maps argument names to their metadata. It is a property of the
// operator type, not of any instance; the evaluator checks required
// parameters against each node before construction.
type Params map[string]Param

// UnaryParams is the spec of the unary shape: one required "value".
func UnaryParams(desc string) Params {
	return Params{"value": {Required: true, Description: desc}}
}

// BinaryParams is the spec of the binary shape: required "left" and
// "right".
func BinaryParams(leftDesc, rightDesc string) Params {
	return Params{
		"left":  {Required: true, Description: leftDesc},
		"right": {Required: true, Description: rightDesc},
	}
}

// CommutativeParams is the spec of the commutative shape: one required
// "values" array.
func CommutativeParams(desc string) Params {
	return Params{"values": {Required: true, Description: desc}}
}
