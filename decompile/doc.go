// Package decompile renders node trees back to readable DSL source text,
// the inverse direction of evaluation. It consults each operator's Render
// and never touches an environment.
package decompile
