package ir

import (
	"fmt"
	"maps"
	"slices"
)

// FromAny translates plain Go values (the shape produced by generic
// JSON/YAML decoding) into a node tree. Map keys must be strings; maps
// lay out in sorted key order since Go maps carry none.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		if x > 1<<62 {
			return nil, fmt.Errorf("integer %d overflows", x)
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case map[any]any:
		strs := make(map[string]any, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v (%T) is not a string", k, k)
			}
			strs[ks] = e
		}
		return FromAny(strs)
	default:
		return nil, fmt.Errorf("cannot translate %T into a node", v)
	}
}

// ToAny translates a node tree back into plain Go values: objects become
// map[string]any, arrays []any, scalars their natural Go type.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return int64(0)
	case ArrayType:
		vs := make([]any, len(y.Values))
		for i, v := range y.Values {
			vs[i] = ToAny(v)
		}
		return vs
	case ObjectType:
		m := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			m[f] = ToAny(y.Values[i])
		}
		return m
	default:
		panic("type")
	}
}
