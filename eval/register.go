package eval

import (
	"maps"
	"slices"
	"sync"

	"github.com/ramp-lang/go-ramp/debug"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

// Register adds s to the operator table under its name. Re-registering a
// name replaces the previous symbol; last registration wins. The table is
// meant to be populated during init, before evaluation starts — lookups
// afterwards are pure reads.
func Register(s Symbol) {
	mu.Lock()
	defer mu.Unlock()
	if debug.Register() {
		debug.Logf("register %s\n", s.String())
	}
	d[s.String()] = s
}

// Lookup returns the symbol registered under name, nil when there is
// none.
func Lookup(name string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Symbols returns the registered symbols sorted by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, name := range slices.Sorted(maps.Keys(d)) {
		res = append(res, d[name])
	}
	return res
}
