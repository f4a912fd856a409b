package builtin

import (
	"fmt"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

var indexSym = &indexSymbol{}

// Index returns the subscript operator: {op: "index", base: b, index: i}.
// Arrays index zero-based and fail out of range; objects yield null for a
// missing key.
func Index() eval.Symbol { return indexSym }

const indexName = "index"

type indexSymbol struct{}

func (s *indexSymbol) String() string { return indexName }

func (s *indexSymbol) Params() eval.Params {
	return eval.Params{
		"base":  {Required: true, Description: "array or object to index into"},
		"index": {Required: true, Description: "zero-based position, or object key"},
	}
}

func (s *indexSymbol) Instance(node *ir.Node) (eval.Op, error) {
	o := &indexOp{}
	o.Simple = eval.NewSimple(indexName, node, o.compute)
	return o, nil
}

type indexOp struct{ eval.Simple }

func (o *indexOp) compute(args *ir.Node) (*ir.Node, error) {
	base := ir.Get(args, "base")
	idx := ir.Get(args, "index")
	switch base.Type {
	case ir.ArrayType:
		i, ok := idx.AsInt()
		if !ok {
			return nil, fmt.Errorf("array index must be an integer, got %s: %w", idx.Type, eval.ErrValidation)
		}
		if i < 0 || i >= int64(len(base.Values)) {
			return nil, fmt.Errorf("index %d out of range for array of length %d", i, len(base.Values))
		}
		return base.Values[i], nil
	case ir.ObjectType:
		if idx.Type != ir.StringType {
			return nil, fmt.Errorf("object index must be a string, got %s: %w", idx.Type, eval.ErrValidation)
		}
		if v := ir.Get(base, idx.String); v != nil {
			return v, nil
		}
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("cannot index into %s", base.Type)
	}
}

func (o *indexOp) Render(f eval.RenderFunc) (string, error) {
	base, err := f(o.Arg("base"))
	if err != nil {
		return "", err
	}
	idx, err := f(o.Arg("index"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%s]", base, idx), nil
}
