// Package decode turns serialized expression trees into ir nodes. The
// core is agnostic to wire encoding; this is the YAML/JSON front door for
// callers whose trees arrive as bytes. JSON input parses as a YAML
// subset.
package decode

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/ramp-lang/go-ramp/ir"
)

// Parse decodes one YAML or JSON document into a node tree, preserving
// object field order.
func Parse(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error decoding tree: %w", err)
	}
	return fromDecoded(v)
}

func fromDecoded(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.NewObject()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v (%T) is not a string", item.Key, item.Key)
			}
			n, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	default:
		return ir.FromAny(v)
	}
}
