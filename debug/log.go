package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ramp-lang/go-ramp/ir"
)

// Logf writes a debug line to stderr. Node arguments are logged as their
// JSON-ish plain-value form so trees stay readable in traces.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			d, err := json.Marshal(ir.ToAny(x))
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case map[string]any, []any:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
