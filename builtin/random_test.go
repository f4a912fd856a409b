package builtin

import (
	"fmt"
	"testing"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

func TestRandomOpsAreDeterministic(t *testing.T) {
	env := eval.MapEnv{}
	srcs := []string{
		`{op: randomFloat, unit: u1}`,
		`{op: randomInteger, unit: u1, min: 0, max: 99}`,
		`{op: bernoulliTrial, unit: u1, p: 0.5}`,
		`{op: uniformChoice, unit: u1, choices: [a, b, c]}`,
		`{op: weightedChoice, unit: u1, choices: [a, b], weights: [1, 3]}`,
		`{op: sample, unit: u1, choices: [1, 2, 3, 4]}`,
	}
	for _, src := range srcs {
		a := mustEval(t, src, env)
		b := mustEval(t, src, env)
		if !ir.Equal(a, b) {
			t.Errorf("%s not deterministic: %v vs %v", src, ir.ToAny(a), ir.ToAny(b))
		}
	}
}

func TestSaltChangesTheDraw(t *testing.T) {
	env := eval.MapEnv{}
	differs := false
	for i := 0; i < 20 && !differs; i++ {
		unit := fmt.Sprintf("unit-%d", i)
		a := mustEval(t, fmt.Sprintf(`{op: randomFloat, unit: %s, salt: s1}`, unit), env)
		b := mustEval(t, fmt.Sprintf(`{op: randomFloat, unit: %s, salt: s2}`, unit), env)
		fa, _ := a.AsFloat()
		fb, _ := b.AsFloat()
		differs = fa != fb
	}
	if !differs {
		t.Errorf("distinct salts never changed the draw")
	}
}

func TestRandomFloatRange(t *testing.T) {
	env := eval.MapEnv{}
	for i := 0; i < 200; i++ {
		src := fmt.Sprintf(`{op: randomFloat, unit: u%d, min: 2, max: 5}`, i)
		got := mustEval(t, src, env)
		f, ok := got.AsFloat()
		if !ok || f < 2 || f >= 5 {
			t.Fatalf("%s = %v outside [2, 5)", src, ir.ToAny(got))
		}
	}
	if _, err := eval.Eval(mustParse(t, `{op: randomFloat, unit: u, min: 5, max: 2}`), env); err == nil {
		t.Errorf("expected error for inverted bounds")
	}
}

func TestRandomIntegerRange(t *testing.T) {
	env := eval.MapEnv{}
	seen := map[int64]bool{}
	for i := 0; i < 300; i++ {
		src := fmt.Sprintf(`{op: randomInteger, unit: u%d, min: 1, max: 4}`, i)
		got := mustEval(t, src, env)
		v, ok := got.AsInt()
		if !ok || v < 1 || v > 4 {
			t.Fatalf("%s = %v outside [1, 4]", src, ir.ToAny(got))
		}
		seen[v] = true
	}
	for v := int64(1); v <= 4; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn over 300 units", v)
		}
	}
}

func TestBernoulliTrialBounds(t *testing.T) {
	env := eval.MapEnv{}
	for i := 0; i < 50; i++ {
		got := mustEval(t, fmt.Sprintf(`{op: bernoulliTrial, unit: u%d, p: 0}`, i), env)
		if got.Bool {
			t.Fatalf("p=0 drew true for unit u%d", i)
		}
		got = mustEval(t, fmt.Sprintf(`{op: bernoulliTrial, unit: u%d, p: 1}`, i), env)
		if !got.Bool {
			t.Fatalf("p=1 drew false for unit u%d", i)
		}
	}
	if _, err := eval.Eval(mustParse(t, `{op: bernoulliTrial, unit: u, p: 1.5}`), env); err == nil {
		t.Errorf("expected error for p outside [0, 1]")
	}
}

func TestBernoulliTrialRate(t *testing.T) {
	env := eval.MapEnv{}
	hits := 0
	const n = 1000
	for i := 0; i < n; i++ {
		got := mustEval(t, fmt.Sprintf(`{op: bernoulliTrial, unit: u%d, p: 0.3}`, i), env)
		if got.Bool {
			hits++
		}
	}
	// generous bounds around 300
	if hits < 200 || hits > 400 {
		t.Errorf("p=0.3 hit %d of %d units", hits, n)
	}
}

func TestUniformChoice(t *testing.T) {
	env := eval.MapEnv{}
	counts := map[string]int{}
	for i := 0; i < 900; i++ {
		src := fmt.Sprintf(`{op: uniformChoice, unit: u%d, choices: [a, b, c]}`, i)
		got := mustEval(t, src, env)
		switch got.String {
		case "a", "b", "c":
			counts[got.String]++
		default:
			t.Fatalf("%s drew %v outside the choices", src, ir.ToAny(got))
		}
	}
	for _, c := range []string{"a", "b", "c"} {
		if counts[c] < 200 || counts[c] > 400 {
			t.Errorf("choice %s drawn %d of 900 times", c, counts[c])
		}
	}

	got := mustEval(t, `{op: uniformChoice, unit: u, choices: []}`, env)
	if got.Type != ir.NullType {
		t.Errorf("empty choices: got %v, want null", ir.ToAny(got))
	}
}

func TestWeightedChoice(t *testing.T) {
	env := eval.MapEnv{}
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		src := fmt.Sprintf(`{op: weightedChoice, unit: u%d, choices: [a, b, c], weights: [1, 3, 0]}`, i)
		got := mustEval(t, src, env)
		counts[got.String]++
	}
	if counts["c"] != 0 {
		t.Errorf("zero-weight choice drawn %d times", counts["c"])
	}
	if counts["b"] <= counts["a"] {
		t.Errorf("weight 3 drawn %d times, weight 1 drawn %d times", counts["b"], counts["a"])
	}

	if _, err := eval.Eval(mustParse(t, `{op: weightedChoice, unit: u, choices: [a], weights: [0]}`), env); err == nil {
		t.Errorf("expected error for weights summing to zero")
	}
	if _, err := eval.Eval(mustParse(t, `{op: weightedChoice, unit: u, choices: [a, b], weights: [1]}`), env); err == nil {
		t.Errorf("expected error for mismatched lengths")
	}
}

func TestSample(t *testing.T) {
	env := eval.MapEnv{}
	elems := func(n *ir.Node) map[int64]bool {
		m := map[int64]bool{}
		for _, v := range n.Values {
			i, _ := v.AsInt()
			m[i] = true
		}
		return m
	}

	got := mustEval(t, `{op: sample, unit: u, choices: [1, 2, 3, 4], draws: 2}`, env)
	if len(got.Values) != 2 {
		t.Fatalf("drew %d values, want 2", len(got.Values))
	}
	for v := range elems(got) {
		if v < 1 || v > 4 {
			t.Errorf("sample drew %d outside the choices", v)
		}
	}

	// a full draw is a permutation
	got = mustEval(t, `{op: sample, unit: u, choices: [1, 2, 3, 4]}`, env)
	if len(got.Values) != 4 || len(elems(got)) != 4 {
		t.Errorf("full sample is not a permutation: %v", ir.ToAny(got))
	}

	if _, err := eval.Eval(mustParse(t, `{op: sample, unit: u, choices: [1], draws: 5}`), env); err == nil {
		t.Errorf("expected error for draws above the choice count")
	}
}

func TestUnitForms(t *testing.T) {
	env := eval.MapEnv{}
	// array units concatenate; the draw must differ from the flat unit
	// only when the parts differ
	a := mustEval(t, `{op: randomFloat, unit: [user, 42]}`, env)
	b := mustEval(t, `{op: randomFloat, unit: "user.42"}`, env)
	if !ir.Equal(a, b) {
		t.Errorf("array unit and joined string unit disagree: %v vs %v", ir.ToAny(a), ir.ToAny(b))
	}

	if _, err := eval.Eval(mustParse(t, `{op: randomFloat, unit: null}`), env); err == nil {
		t.Errorf("expected error for a null unit")
	}
	if _, err := eval.Eval(mustParse(t, `{op: randomFloat, unit: {a: 1}}`), env); err == nil {
		t.Errorf("expected error for an object unit")
	}
}
