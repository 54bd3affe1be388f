package core

// Boundary is the value read for any column outside the grid.
const Boundary uint8 = 0

// Grid stores the space-time history of a one-dimensional automaton in
// row-major order: row y is generation y, column x is spatial position x.
// Dimensions are fixed at construction.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a zeroed grid w cells wide and h generations tall.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice. Renderers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Row returns generation y as a slice into the backing storage.
func (g *Grid) Row(y int) []uint8 {
	start := y * g.W
	return g.data[start : start+g.W : start+g.W]
}

// At reads the cell at (x, y). Columns outside [0, W) read as Boundary;
// there is no wraparound.
func (g *Grid) At(x, y int) uint8 {
	if x < 0 || x >= g.W {
		return Boundary
	}
	return g.data[g.Index(x, y)]
}

// Set writes v at (x, y).
func (g *Grid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Active counts cells holding a non-zero value.
func (g *Grid) Active() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}
