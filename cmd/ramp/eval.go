package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/ramp-lang/go-ramp/eval"
	"github.com/ramp-lang/go-ramp/ir"
)

func rampEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for i, file := range inputFiles(args) {
		node, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		res, err := eval.Eval(node, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		d, err := yaml.Marshal(ir.ToAny(res))
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
