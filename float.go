package neighborjoin

// Float is the set of element types a distance matrix can use. The entire
// pipeline (matrix, sum vector, branch lengths) runs at a single width
// selected once per build; mixing widths is a compile-time type error.
type Float interface {
	~float32 | ~float64
}
