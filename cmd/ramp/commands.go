package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/ramp-lang/go-ramp/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ramp").
		WithSynopsis("ramp [opts] command [opts]").
		WithDescription("ramp evaluates and inspects decision trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rampMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			ViewCommand(cfg),
			OpsCommand(cfg))
}

func rampMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.MapEnv{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "bind a variable in the environment",
		Type:        cli.NamedFuncOpt(envOptTypeFunc(cfg.Env), "(name=value)"),
	})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=value [-e name2=value2]...] [files]").
		WithDescription("Evaluate tree files against the given environment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rampEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env eval.MapEnv) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("decompile tree files to DSL source text").
		WithRun(func(cc *cli.Context, args []string) error {
			return rampView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("ops").
		WithOpts(opts...).
		WithSynopsis("ops").
		WithDescription("list registered operators and their parameters").
		WithRun(func(cc *cli.Context, args []string) error {
			return rampOps(cfg, cc, args)
		})
	cfg.Ops = cmd
	return cmd
}
