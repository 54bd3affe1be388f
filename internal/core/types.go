package core

// Size describes the dimensions of a grid: W columns by H generations.
type Size struct {
	W int
	H int
}

// View is the read-only face of a finished grid handed to renderers.
type View interface {
	Size() Size
	Cells() []uint8
}

var _ View = (*Grid)(nil)
