package elementary

import "testing"

func TestRule90TruthTable(t *testing.T) {
	// Wolfram code 90 = 0b01011010, indexed by left<<2|center<<1|right.
	const code = 90
	for idx := 0; idx < 8; idx++ {
		n := Neighborhood{Left: uint8(idx >> 2 & 1), Center: uint8(idx >> 1 & 1), Right: uint8(idx & 1)}
		want := uint8(code >> idx & 1)
		if got := Rule90(n); got != want {
			t.Fatalf("Rule90(%+v)=%d, expected %d", n, got, want)
		}
	}
}

func TestNeighborhoodAtEdges(t *testing.T) {
	row := []uint8{1, 0, 1}
	if n := neighborhoodAt(row, 0); n != (Neighborhood{Left: 0, Center: 1, Right: 0}) {
		t.Fatalf("left edge %+v", n)
	}
	if n := neighborhoodAt(row, 2); n != (Neighborhood{Left: 0, Center: 1, Right: 0}) {
		t.Fatalf("right edge %+v", n)
	}
	if n := neighborhoodAt([]uint8{1}, 0); n != (Neighborhood{Center: 1}) {
		t.Fatalf("single cell %+v", n)
	}
}
