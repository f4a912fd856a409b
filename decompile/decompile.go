package decompile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

// Render turns a node tree back into DSL source text. Operator nodes
// render through their symbol's Render (custom or shape default), plain
// containers render element-wise with bracket punctuation, primitives
// render textually. Rendering recurses unconditionally — unlike
// evaluation there is no untaken branch — and any failure aborts the
// whole call.
func Render(node *ir.Node, opts ...Option) (string, error) {
	st := &state{}
	for _, opt := range opts {
		opt(st)
	}
	return render(node, st)
}

// Fprint renders node to w followed by a newline.
func Fprint(w io.Writer, node *ir.Node, opts ...Option) error {
	s, err := Render(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

type state struct {
	colors *Colors
}

func render(node *ir.Node, st *state) (string, error) {
	if node == nil {
		return st.value("null"), nil
	}
	if node.IsOp() {
		name := node.OpName()
		sym := eval.Lookup(name)
		if sym == nil {
			return "", fmt.Errorf("%q: %w", name, eval.ErrUnknownOperator)
		}
		if err := eval.Validate(sym, node); err != nil {
			return "", err
		}
		o, err := sym.Instance(node)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return o.Render(func(n *ir.Node) (string, error) {
			return render(n, st)
		})
	}
	switch node.Type {
	case ir.NullType:
		return st.value("null"), nil
	case ir.BoolType:
		return st.value(strconv.FormatBool(node.Bool)), nil
	case ir.NumberType:
		return st.value(renderNumber(node)), nil
	case ir.StringType:
		return st.value(strconv.Quote(node.String)), nil
	case ir.ArrayType:
		var b strings.Builder
		b.WriteString(st.sep("["))
		for i, v := range node.Values {
			if i > 0 {
				b.WriteString(st.sep(", "))
			}
			s, err := render(v, st)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		b.WriteString(st.sep("]"))
		return b.String(), nil
	case ir.ObjectType:
		var b strings.Builder
		b.WriteString(st.sep("{"))
		for i, field := range node.Fields {
			if i > 0 {
				b.WriteString(st.sep(", "))
			}
			b.WriteString(st.field(field))
			b.WriteString(st.sep(": "))
			s, err := render(node.Values[i], st)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		b.WriteString(st.sep("}"))
		return b.String(), nil
	default:
		return "", fmt.Errorf("cannot render type %s", node.Type)
	}
}

func renderNumber(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}
