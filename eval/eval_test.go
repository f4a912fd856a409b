package eval

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ramp-lang/go-ramp/ir"
)

func opNode(t *testing.T, name string, kvs ...any) *ir.Node {
	t.Helper()
	n := ir.NewObject().Set(ir.OpKey, ir.FromString(name))
	for i := 0; i+1 < len(kvs); i += 2 {
		v, err := ir.FromAny(kvs[i+1])
		if err != nil {
			t.Fatalf("bad argument %v: %v", kvs[i+1], err)
		}
		n.Set(kvs[i].(string), v)
	}
	return n
}

// echoSymbol is an eager test operator returning its resolved value
// argument.
type echoSymbol struct{ instances int }

func (s *echoSymbol) String() string { return "echotest" }

func (s *echoSymbol) Params() Params { return UnaryParams("value echoed back") }

func (s *echoSymbol) Instance(node *ir.Node) (Op, error) {
	s.instances++
	return NewSimple(s.String(), node, func(args *ir.Node) (*ir.Node, error) {
		return ir.Get(args, "value"), nil
	}), nil
}

// readvarSymbol resolves the variable named by its raw var argument.
type readvarSymbol struct{}

func (s *readvarSymbol) String() string { return "readvartest" }

func (s *readvarSymbol) Params() Params {
	return Params{"var": {Required: true, Description: "variable name"}}
}

func (s *readvarSymbol) Instance(node *ir.Node) (Op, error) {
	return &readvarOp{Core: NewCore(s.String(), node)}, nil
}

type readvarOp struct{ Core }

func (o *readvarOp) Eval(env Env, f EvalFunc) (*ir.Node, error) {
	return env.Resolve(o.Arg("var").String)
}

// firstSymbol is a lazy test operator evaluating only its "a" argument.
type firstSymbol struct{}

func (s *firstSymbol) String() string { return "firsttest" }

func (s *firstSymbol) Params() Params {
	return Params{
		"a": {Required: true, Description: "evaluated"},
		"b": {Required: true, Description: "never evaluated"},
	}
}

func (s *firstSymbol) Instance(node *ir.Node) (Op, error) {
	return &firstOp{Core: NewCore(s.String(), node)}, nil
}

type firstOp struct{ Core }

func (o *firstOp) Eval(env Env, f EvalFunc) (*ir.Node, error) {
	return f(o.Arg("a"), env)
}

var (
	echoSym    = &echoSymbol{}
	readvarSym = &readvarSymbol{}
	firstSym   = &firstSymbol{}
)

func init() {
	Register(echoSym)
	Register(readvarSym)
	Register(firstSym)
}

type countingEnv struct {
	n int
	m MapEnv
}

func (e *countingEnv) Resolve(name string) (*ir.Node, error) {
	e.n++
	return e.m.Resolve(name)
}

func TestPrimitiveIdentity(t *testing.T) {
	for _, n := range []*ir.Node{
		ir.FromInt(7), ir.FromFloat(0.5), ir.FromString("x"),
		ir.FromBool(true), ir.Null(),
	} {
		got, err := Eval(n, MapEnv{})
		if err != nil {
			t.Fatalf("Eval(%v): %v", n, err)
		}
		if got != n {
			t.Errorf("primitive did not evaluate to itself: %v", n)
		}
	}
}

func TestNilEvaluatesToNull(t *testing.T) {
	got, err := Eval(nil, MapEnv{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NullType {
		t.Errorf("got %s, want Null", got.Type)
	}
}

func TestContainerEval(t *testing.T) {
	env := MapEnv{"v": ir.FromInt(9)}
	tree := ir.FromSlice([]*ir.Node{
		ir.FromInt(1),
		opNode(t, "readvartest", "var", "v"),
		ir.NewObject().Set("k", opNode(t, "readvartest", "var", "v")),
	})
	got, err := Eval(tree, env)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Node{
		ir.FromInt(1),
		ir.FromInt(9),
		ir.NewObject().Set("k", ir.FromInt(9)),
	})
	if !ir.Equal(got, want) {
		t.Errorf("got %v, want %v", ir.ToAny(got), ir.ToAny(want))
	}
}

func TestUnknownOperator(t *testing.T) {
	_, err := Eval(opNode(t, "nosuchop", "x", 1), MapEnv{})
	if !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("got %v, want ErrUnknownOperator", err)
	}
}

func TestValidationBeforeAnyEvaluation(t *testing.T) {
	env := &countingEnv{m: MapEnv{"v": ir.FromInt(1)}}
	before := echoSym.instances
	// echotest requires "value"; the extra argument holds a
	// resolution that must never run
	node := opNode(t, "echotest", "x", opNode(t, "readvartest", "var", "v"))
	_, err := Eval(node, env)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if env.n != 0 {
		t.Errorf("environment resolved %d times before validation failure", env.n)
	}
	if echoSym.instances != before {
		t.Errorf("constructor ran despite validation failure")
	}
}

func TestEagerAgreesWithManualEvaluation(t *testing.T) {
	env := MapEnv{"v": ir.FromInt(9)}
	arg := opNode(t, "readvartest", "var", "v")
	node := opNode(t, "echotest", "value", arg)

	got, err := Eval(node, env)
	if err != nil {
		t.Fatal(err)
	}
	manual, err := Eval(arg, env)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, manual) {
		t.Errorf("eager pre-evaluation disagrees with manual evaluation: %v vs %v",
			ir.ToAny(got), ir.ToAny(manual))
	}
}

func TestLazySelectiveEvaluation(t *testing.T) {
	// b resolves an unknown variable; a lazy operator must never
	// reach it
	node := opNode(t, "firsttest",
		"a", 42,
		"b", opNode(t, "readvartest", "var", "missing"))
	got, err := Eval(node, MapEnv{})
	if err != nil {
		t.Fatalf("untaken argument was evaluated: %v", err)
	}
	if v, _ := got.AsInt(); v != 42 {
		t.Errorf("got %v, want 42", ir.ToAny(got))
	}
}

func TestUnknownVariablePropagates(t *testing.T) {
	_, err := Eval(opNode(t, "readvartest", "var", "missing"), MapEnv{})
	if !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("got %v, want ErrUnknownVariable", err)
	}
}

func TestMaxDepth(t *testing.T) {
	deep := ir.FromInt(1)
	for i := 0; i < 10; i++ {
		deep = ir.FromSlice([]*ir.Node{deep})
	}
	if _, err := New(MaxDepth(5)).Eval(deep, MapEnv{}); !errors.Is(err, ErrStructure) {
		t.Errorf("got %v, want ErrStructure", err)
	}
	if _, err := New().Eval(deep, MapEnv{}); err != nil {
		t.Errorf("default depth rejected a shallow tree: %v", err)
	}
}

type renamedSymbol struct {
	name string
	tag  string
}

func (s *renamedSymbol) String() string { return s.name }
func (s *renamedSymbol) Params() Params { return Params{} }
func (s *renamedSymbol) Instance(node *ir.Node) (Op, error) {
	return NewSimple(s.name, node, func(args *ir.Node) (*ir.Node, error) {
		return ir.FromString(s.tag), nil
	}), nil
}

func TestLastRegistrationWins(t *testing.T) {
	Register(&renamedSymbol{name: "duptest", tag: "first"})
	Register(&renamedSymbol{name: "duptest", tag: "second"})
	got, err := Eval(opNode(t, "duptest"), MapEnv{})
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "second" {
		t.Errorf("got %q, want the later registration", got.String)
	}
	seen := 0
	for _, s := range Symbols() {
		if s.String() == "duptest" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("duptest registered %d times in Symbols()", seen)
	}
}

func TestSymbolsSorted(t *testing.T) {
	syms := Symbols()
	for i := 1; i < len(syms); i++ {
		if syms[i-1].String() > syms[i].String() {
			t.Fatalf("Symbols() not sorted: %s before %s", syms[i-1], syms[i])
		}
	}
}

func TestEnvOf(t *testing.T) {
	env, err := EnvOf(map[string]any{"x": 7, "s": "str"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := env.Resolve("x")
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := v.AsInt(); i != 7 {
		t.Errorf("x = %v", ir.ToAny(v))
	}
	if _, err := env.Resolve("nope"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("got %v, want ErrUnknownVariable", err)
	}
}

func TestConcurrentEvaluations(t *testing.T) {
	node := opNode(t, "readvartest", "var", "v")
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		i := i
		go func() {
			env := MapEnv{"v": ir.FromInt(int64(i))}
			got, err := Eval(node, env)
			if err != nil {
				done <- err
				return
			}
			if v, _ := got.AsInt(); v != int64(i) {
				done <- fmt.Errorf("got %d, want %d", v, i)
				return
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
