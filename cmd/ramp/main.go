package main

import (
	"context"

	"github.com/scott-cotton/cli"

	_ "github.com/ramp-lang/go-ramp/builtin"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
