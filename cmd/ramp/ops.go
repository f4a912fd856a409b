package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/ramp-lang/go-ramp/eval"
)

func rampOps(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		cfg.Ops.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: ops takes no arguments", cli.ErrUsage)
	}
	for _, sym := range eval.Symbols() {
		fmt.Fprintf(cc.Out, "%s\n", sym)
		params := sym.Params()
		for _, name := range slices.Sorted(maps.Keys(params)) {
			p := params[name]
			req := ""
			if p.Required {
				req = " (required)"
			}
			fmt.Fprintf(cc.Out, "\t%s%s: %s\n", name, req, p.Description)
		}
	}
	return nil
}
