package decompile

type Option func(*state)

// WithColors colorizes primitives, field names and punctuation for
// terminal display. Operator text keeps its own shape.
func WithColors(c *Colors) Option {
	return func(st *state) { st.colors = c }
}

func (st *state) value(s string) string {
	if st.colors == nil {
		return s
	}
	return st.colors.Value(s)
}

func (st *state) field(s string) string {
	if st.colors == nil {
		return s
	}
	return st.colors.Field(s)
}

func (st *state) sep(s string) string {
	if st.colors == nil {
		return s
	}
	return st.colors.Sep(s)
}
