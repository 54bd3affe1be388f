package core

import (
	"testing"
	"time"
)

func TestPacerReleasesAtRate(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(10)
	p.now = func() time.Time { return clock }

	if n := p.Take(); n != 1 {
		t.Fatalf("first Take=%d, expected 1", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := p.Take(); n != 0 {
		t.Fatalf("Take after half a step=%d, expected 0", n)
	}
	clock = clock.Add(300 * time.Millisecond)
	if n := p.Take(); n != 3 {
		t.Fatalf("Take after 350ms=%d, expected 3", n)
	}

	p.Reset()
	if n := p.Take(); n != 1 {
		t.Fatalf("Take after Reset=%d, expected 1", n)
	}
}
