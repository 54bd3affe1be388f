package elementary

import "sierpinski/internal/core"

// Neighborhood is the (left, center, right) triple read from the previous
// generation when computing one cell of the next.
type Neighborhood struct {
	Left, Center, Right uint8
}

// Rule maps a neighborhood to the next state of its center cell. Inputs and
// output are 0 or 1.
type Rule func(Neighborhood) uint8

// Rule90 returns the XOR of the left and right neighbors. The center cell
// does not take part.
func Rule90(n Neighborhood) uint8 {
	return (n.Left + n.Right) % 2
}

// neighborhoodAt reads column i of row with out-of-range neighbors replaced
// by the fixed boundary value.
func neighborhoodAt(row []uint8, i int) Neighborhood {
	n := Neighborhood{Left: core.Boundary, Center: row[i], Right: core.Boundary}
	if i > 0 {
		n.Left = row[i-1]
	}
	if i < len(row)-1 {
		n.Right = row[i+1]
	}
	return n
}
