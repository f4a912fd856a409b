package eval

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/ir"
)

// Env is the variable-resolution capability an evaluation runs against.
// The host owns population and scoping; the core only resolves names.
type Env interface {
	Resolve(name string) (*ir.Node, error)
}

// MapEnv is a map-backed Env. Resolution of an absent name fails with
// ErrUnknownVariable.
type MapEnv map[string]*ir.Node

func (m MapEnv) Resolve(name string) (*ir.Node, error) {
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariable)
	}
	return v, nil
}

// Snapshot exposes the full variable map for operators that need more
// than name-at-a-time resolution, such as the expr builtin.
func (m MapEnv) Snapshot() map[string]*ir.Node {
	res := make(map[string]*ir.Node, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

// EnvOf builds a MapEnv from plain Go values.
func EnvOf(vs map[string]any) (MapEnv, error) {
	res := make(MapEnv, len(vs))
	for k, v := range vs {
		n, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", k, err)
		}
		res[k] = n
	}
	return res, nil
}
