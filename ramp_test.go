package ramp_test

import (
	"fmt"
	"testing"

	ramp "github.com/ramp-lang/go-ramp"
	"github.com/ramp-lang/go-ramp/decode"
	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

// an end-to-end ramp decision: gate a feature to 30% of users, with an
// allowlist override
const rolloutSrc = `
op: cond
if:
  op: or
  values:
    - {op: equals, left: {op: get, var: tier}, right: internal}
    - {op: bernoulliTrial, unit: {op: get, var: userid}, p: 0.3, salt: new-checkout}
then: "on"
else: "off"
`

func TestRolloutTree(t *testing.T) {
	tree, err := decode.Parse([]byte(rolloutSrc))
	if err != nil {
		t.Fatal(err)
	}

	env, err := eval.EnvOf(map[string]any{"tier": "internal", "userid": "u-1"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ramp.Eval(tree, env)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "on" {
		t.Errorf("internal tier got %v, want on", ir.ToAny(got))
	}

	// external users split deterministically
	on := 0
	const n = 500
	for i := 0; i < n; i++ {
		env, err := eval.EnvOf(map[string]any{
			"tier":   "external",
			"userid": fmt.Sprintf("u-%d", i),
		})
		if err != nil {
			t.Fatal(err)
		}
		first, err := ramp.Eval(tree, env)
		if err != nil {
			t.Fatal(err)
		}
		again, err := ramp.Eval(tree, env)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(first, again) {
			t.Fatalf("assignment for user %d not stable", i)
		}
		if first.String == "on" {
			on++
		}
	}
	if on < 100 || on > 200 {
		t.Errorf("rollout hit %d of %d external users at p=0.3", on, n)
	}
}

func TestRolloutTreeRenders(t *testing.T) {
	tree, err := decode.Parse([]byte(rolloutSrc))
	if err != nil {
		t.Fatal(err)
	}
	s, err := ramp.Render(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := `if tier == "internal" || bernoulliTrial(unit=userid, p=0.3, salt="new-checkout") then "on" else "off"`
	if s != want {
		t.Errorf("render\n got %q\nwant %q", s, want)
	}
}
