// Package ir defines the node tree the ramp interpreter evaluates and
// decompiles: a small typed IR for null, bool, number, string, array and
// object values, where an object carrying the reserved "op" field is an
// operator node.
//
// # Related Packages
//
//   - github.com/ramp-lang/go-ramp/eval - operator dispatch and evaluation
//   - github.com/ramp-lang/go-ramp/decompile - rendering trees to source text
package ir
