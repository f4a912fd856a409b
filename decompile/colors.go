package decompile

import "github.com/fatih/color"

// Colors holds the sprint functions used for colored rendering.
type Colors struct {
	Value func(a ...any) string
	Field func(a ...any) string
	Sep   func(a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Value: color.RGB(128, 216, 236).SprintFunc(),
		Field: color.RGB(196, 96, 16).SprintFunc(),
		Sep:   color.RGB(255, 0, 196).SprintFunc(),
	}
}
