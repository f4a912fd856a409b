package ir

// Truth is the DSL's truthiness rule: empty containers, empty strings,
// zero numbers and null are false, everything else true.
func Truth(y *Node) bool {
	if y == nil {
		return false
	}
	switch y.Type {
	case ObjectType:
		return len(y.Fields) != 0
	case ArrayType:
		return len(y.Values) != 0
	case StringType:
		return y.String != ""
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64 != 0
		}
		if y.Float64 != nil {
			return *y.Float64 != 0.0
		}
		return false
	case BoolType:
		return y.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
