package core

// Size describes pixel dimensions.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Model is the contract the viewer drives. Recompute rebuilds every derived
// output from the current parameters; there is no incremental path.
type Model interface {
	Name() string
	Size() Size
	Recompute() error
}
