package ir

import (
	"maps"
	"slices"
)

// OpKey is the reserved object field naming the operator that handles a
// node. An object carrying it is an operator node; every other field of
// that object is a named argument.
const OpKey = "op"

// Node is one unit of a serialized expression tree. Scalar nodes use the
// field matching their Type; arrays use Values; objects use Fields and
// Values pairwise, in document order. Nodes are treated as immutable once
// built.
type Node struct {
	Type Type

	// ObjectType: Fields[i] names Values[i]. ArrayType: Values only.
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// FromMap builds an object node from an unordered map. Fields are laid
// out in sorted key order so the result is deterministic.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// Set adds or replaces a field on an object node, preserving document
// order for new fields. It returns the node for chaining.
func (y *Node) Set(field string, v *Node) *Node {
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Get returns the named field of an object node, or nil when the node is
// not an object or has no such field.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// IsOp reports whether y is an operator node: an object whose OpKey field
// holds a string operator name.
func (y *Node) IsOp() bool {
	if y == nil || y.Type != ObjectType {
		return false
	}
	tag := Get(y, OpKey)
	return tag != nil && tag.Type == StringType
}

// OpName returns the operator name of an operator node, or "" when y is
// not one.
func (y *Node) OpName() string {
	if !y.IsOp() {
		return ""
	}
	return Get(y, OpKey).String
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// ToMap flattens an object node into an unordered map view. Non-object
// nodes yield nil.
func ToMap(y *Node) map[string]*Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Fields))
	for i, f := range y.Fields {
		res[f] = y.Values[i]
	}
	return res
}

// AsInt returns the integral value of a number node. Float-valued numbers
// with no fractional part convert.
func (y *Node) AsInt() (int64, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return *y.Int64, true
	}
	if y.Float64 != nil {
		f := *y.Float64
		i := int64(f)
		if float64(i) == f {
			return i, true
		}
	}
	return 0, false
}

// AsFloat returns the value of a number node as a float64.
func (y *Node) AsFloat() (float64, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	return 0, false
}
