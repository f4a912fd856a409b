package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes of different types order by type rank.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports deep structural equality. Numbers compare by value, so an
// integer equals the float carrying the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders types: Null < Bool < Number < String < Array < Object.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	af, _ := a.AsFloat()
	bf, _ := b.AsFloat()
	return cmp.Compare(af, bf)
}

func compareArrays(a, b *Node) int {
	for i := range a.Values {
		if i >= len(b.Values) {
			return 1
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	if len(a.Values) < len(b.Values) {
		return -1
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if c := cmp.Compare(len(a.Fields), len(b.Fields)); c != 0 {
		return c
	}
	am, bm := ToMap(a), ToMap(b)
	for _, f := range sortedFields(a) {
		bv, ok := bm[f]
		if !ok {
			return 1
		}
		if c := Compare(am[f], bv); c != 0 {
			return c
		}
	}
	for _, f := range sortedFields(b) {
		if _, ok := am[f]; !ok {
			return -1
		}
	}
	return 0
}

func sortedFields(y *Node) []string {
	fs := slices.Clone(y.Fields)
	slices.Sort(fs)
	return fs
}
