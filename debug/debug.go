package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval     bool
	Op       bool
	Register bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("RAMP_DEBUG_EVAL")
	d.Op = boolEnv("RAMP_DEBUG_OP")
	d.Register = boolEnv("RAMP_DEBUG_REGISTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Op() bool {
	return d.Op
}
func Register() bool {
	return d.Register
}
