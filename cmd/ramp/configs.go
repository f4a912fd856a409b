package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/ramp-lang/go-ramp/decode"
	"github.com/ramp-lang/go-ramp/eval"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type EvalConfig struct {
	*MainConfig
	Env eval.MapEnv

	Eval *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}

// envFunc parses one -e name=value binding; the value side is a YAML/JSON
// document.
func envFunc(env eval.MapEnv, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: -e wants name=value, got %q", cli.ErrUsage, a)
	}
	n, err := decode.Parse([]byte(val))
	if err != nil {
		return fmt.Errorf("%w: invalid value for %q: %v", cli.ErrUsage, name, err)
	}
	env[name] = n
	return nil
}
