package builtin

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

// The randomization operators are deterministic: the draw is a hash of
// (salt, unit), so the same unit always lands in the same bucket and
// independent evaluations need no shared state. Every operator takes a
// required "unit" (the identifier being bucketed, a scalar or an array
// of scalars) and an optional "salt" defaulting to the operator name;
// distinct decisions in one tree should carry distinct salts or they
// will correlate.

// hashBits hashes salt, the unit and any extra discriminators onto 64
// uniform bits.
func hashBits(salt string, unit *ir.Node, extra ...string) (uint64, error) {
	us, err := unitString(unit)
	if err != nil {
		return 0, err
	}
	h := blake3.New()
	io.WriteString(h, salt)
	h.Write([]byte{0})
	io.WriteString(h, us)
	for _, e := range extra {
		h.Write([]byte{0})
		io.WriteString(h, e)
	}
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), nil
}

// unitHash maps (salt, unit) onto [0, 1) with 53 bits of precision.
func unitHash(salt string, unit *ir.Node) (float64, error) {
	z, err := hashBits(salt, unit)
	if err != nil {
		return 0, err
	}
	return float64(z>>11) / (1 << 53), nil
}

func unitString(unit *ir.Node) (string, error) {
	switch unit.Type {
	case ir.StringType:
		return unit.String, nil
	case ir.NumberType:
		if unit.Int64 != nil {
			return strconv.FormatInt(*unit.Int64, 10), nil
		}
		f, _ := unit.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case ir.BoolType:
		return strconv.FormatBool(unit.Bool), nil
	case ir.ArrayType:
		parts := make([]string, len(unit.Values))
		for i, v := range unit.Values {
			s, err := unitString(v)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, "."), nil
	default:
		return "", fmt.Errorf("unit must be a scalar or an array of scalars, got %s", unit.Type)
	}
}

func saltArg(args *ir.Node, def string) (string, error) {
	v := ir.Get(args, "salt")
	if v == nil {
		return def, nil
	}
	if v.Type != ir.StringType {
		return "", fmt.Errorf("salt must be a string, got %s", v.Type)
	}
	return v.String, nil
}

func unitArg(args *ir.Node) (*ir.Node, error) {
	v := ir.Get(args, "unit")
	if v == nil || v.Type == ir.NullType {
		return nil, fmt.Errorf("unit must not be null: %w", eval.ErrValidation)
	}
	return v, nil
}

func randomParams(extra eval.Params) eval.Params {
	res := eval.Params{
		"unit": {Required: true, Description: "identifier being bucketed, a scalar or array of scalars"},
		"salt": {Description: "hash salt, defaults to the operator name"},
	}
	for k, v := range extra {
		res[k] = v
	}
	return res
}

// randomSymbol covers the eager randomization operators; they differ
// only in params and compute.
type randomSymbol struct {
	name    string
	params  eval.Params
	compute func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error)
}

func (s *randomSymbol) String() string { return s.name }

func (s *randomSymbol) Params() eval.Params { return s.params }

func (s *randomSymbol) Instance(node *ir.Node) (eval.Op, error) {
	return eval.NewSimple(s.name, node, func(args *ir.Node) (*ir.Node, error) {
		salt, err := saltArg(args, s.name)
		if err != nil {
			return nil, err
		}
		unit, err := unitArg(args)
		if err != nil {
			return nil, err
		}
		return s.compute(args, salt, unit)
	}), nil
}

var randomFloatSym = &randomSymbol{
	name: "randomFloat",
	params: randomParams(eval.Params{
		"min": {Description: "lower bound, default 0"},
		"max": {Description: "upper bound, default 1"},
	}),
	compute: func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error) {
		lo, err := floatArg(args, "min", 0)
		if err != nil {
			return nil, err
		}
		hi, err := floatArg(args, "max", 1)
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, fmt.Errorf("max %v below min %v", hi, lo)
		}
		z, err := unitHash(salt, unit)
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(lo + z*(hi-lo)), nil
	},
}

// RandomFloat draws a deterministic float in [min, max).
func RandomFloat() eval.Symbol { return randomFloatSym }

var randomIntegerSym = &randomSymbol{
	name: "randomInteger",
	params: randomParams(eval.Params{
		"min": {Required: true, Description: "inclusive lower bound"},
		"max": {Required: true, Description: "inclusive upper bound"},
	}),
	compute: func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error) {
		lo, err := intArg(args, "min")
		if err != nil {
			return nil, err
		}
		hi, err := intArg(args, "max")
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, fmt.Errorf("max %d below min %d", hi, lo)
		}
		z, err := hashBits(salt, unit)
		if err != nil {
			return nil, err
		}
		span := uint64(hi-lo) + 1
		return ir.FromInt(lo + int64(z%span)), nil
	},
}

// RandomInteger draws a deterministic integer in [min, max].
func RandomInteger() eval.Symbol { return randomIntegerSym }

var bernoulliTrialSym = &randomSymbol{
	name: "bernoulliTrial",
	params: randomParams(eval.Params{
		"p": {Required: true, Description: "success probability in [0, 1]"},
	}),
	compute: func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error) {
		p, err := floatArg(args, "p", 0)
		if err != nil {
			return nil, err
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("p %v outside [0, 1]", p)
		}
		z, err := unitHash(salt, unit)
		if err != nil {
			return nil, err
		}
		return ir.FromBool(z < p), nil
	},
}

// BernoulliTrial draws a deterministic boolean that is true with
// probability p.
func BernoulliTrial() eval.Symbol { return bernoulliTrialSym }

var uniformChoiceSym = &randomSymbol{
	name: "uniformChoice",
	params: randomParams(eval.Params{
		"choices": {Required: true, Description: "array of candidate values"},
	}),
	compute: func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error) {
		choices := ir.Get(args, "choices")
		if choices.Type != ir.ArrayType {
			return nil, fmt.Errorf("choices must be an array, got %s: %w", choices.Type, eval.ErrValidation)
		}
		if len(choices.Values) == 0 {
			return ir.Null(), nil
		}
		z, err := hashBits(salt, unit)
		if err != nil {
			return nil, err
		}
		return choices.Values[z%uint64(len(choices.Values))], nil
	},
}

// UniformChoice picks one choice uniformly, deterministically per unit.
func UniformChoice() eval.Symbol { return uniformChoiceSym }

var weightedChoiceSym = &randomSymbol{
	name: "weightedChoice",
	params: randomParams(eval.Params{
		"choices": {Required: true, Description: "array of candidate values"},
		"weights": {Required: true, Description: "array of non-negative weights, one per choice"},
	}),
	compute: func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error) {
		choices := ir.Get(args, "choices")
		weights := ir.Get(args, "weights")
		if choices.Type != ir.ArrayType || weights.Type != ir.ArrayType {
			return nil, fmt.Errorf("choices and weights must be arrays: %w", eval.ErrValidation)
		}
		if len(choices.Values) != len(weights.Values) {
			return nil, fmt.Errorf("%d choices but %d weights", len(choices.Values), len(weights.Values))
		}
		if len(choices.Values) == 0 {
			return ir.Null(), nil
		}
		ws := make([]float64, len(weights.Values))
		total := 0.0
		for i, w := range weights.Values {
			f, ok := w.AsFloat()
			if !ok || f < 0 {
				return nil, fmt.Errorf("weight %d must be a non-negative number", i)
			}
			ws[i] = f
			total += f
		}
		if total == 0 {
			return nil, fmt.Errorf("weights sum to zero")
		}
		z, err := unitHash(salt, unit)
		if err != nil {
			return nil, err
		}
		target := z * total
		acc := 0.0
		for i, w := range ws {
			acc += w
			if target < acc {
				return choices.Values[i], nil
			}
		}
		return choices.Values[len(choices.Values)-1], nil
	},
}

// WeightedChoice picks one choice with probability proportional to its
// weight, deterministically per unit.
func WeightedChoice() eval.Symbol { return weightedChoiceSym }

var sampleSym = &randomSymbol{
	name: "sample",
	params: randomParams(eval.Params{
		"choices": {Required: true, Description: "array of candidate values"},
		"draws":   {Description: "number of values to draw, default all"},
	}),
	compute: func(args *ir.Node, salt string, unit *ir.Node) (*ir.Node, error) {
		choices := ir.Get(args, "choices")
		if choices.Type != ir.ArrayType {
			return nil, fmt.Errorf("choices must be an array, got %s: %w", choices.Type, eval.ErrValidation)
		}
		draws := int64(len(choices.Values))
		if d := ir.Get(args, "draws"); d != nil {
			var ok bool
			draws, ok = d.AsInt()
			if !ok {
				return nil, fmt.Errorf("draws must be an integer")
			}
			if draws < 0 || draws > int64(len(choices.Values)) {
				return nil, fmt.Errorf("draws %d outside [0, %d]", draws, len(choices.Values))
			}
		}
		// deterministic Fisher-Yates keyed on (salt, unit, index)
		shuffled := make([]*ir.Node, len(choices.Values))
		copy(shuffled, choices.Values)
		for i := len(shuffled) - 1; i > 0; i-- {
			z, err := hashBits(salt, unit, strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			j := z % uint64(i+1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		return ir.FromSlice(shuffled[:draws]), nil
	},
}

// Sample draws a deterministic pseudo-random subset, in shuffled order.
func Sample() eval.Symbol { return sampleSym }
