package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/ramp-lang/go-ramp/decompile"
)

func rampView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var opts []decompile.Option
	if cfg.Color || outIsTerminal(cc) {
		opts = append(opts, decompile.WithColors(decompile.NewColors()))
	}
	for _, file := range inputFiles(args) {
		node, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		if err := decompile.Fprint(cc.Out, node, opts...); err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
	}
	return nil
}

func outIsTerminal(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
