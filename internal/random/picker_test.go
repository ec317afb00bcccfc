package random

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scripted replays fixed draws and records every bound it was asked for.
type scripted struct {
	draws  []int
	bounds []int
}

func (s *scripted) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func TestPairRejectsRepeatedIndex(t *testing.T) {
	src := &scripted{draws: []int{1, 1, 1, 2}}
	first, second := NewPicker(src).Pair(3)

	if first != 1 || second != 2 {
		t.Errorf("Pair = (%d, %d), want (1, 2)", first, second)
	}
	if diff := cmp.Diff([]int{3, 3, 3, 3}, src.bounds); diff != "" {
		t.Errorf("draw bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestPairAlwaysDistinct(t *testing.T) {
	p := NewSeeded(7)
	for i := 0; i < 10000; i++ {
		a, b := p.Pair(3)
		if a == b {
			t.Fatalf("draw %d: Pair returned equal indices %d", i, a)
		}
		if a < 0 || a > 2 || b < 0 || b > 2 {
			t.Fatalf("draw %d: Pair out of range (%d, %d)", i, a, b)
		}
	}
}

func TestCupCoversEveryIndex(t *testing.T) {
	p := NewSeeded(42)
	seen := make(map[int]int)
	for i := 0; i < 3000; i++ {
		c := p.Cup(3)
		if c < 0 || c > 2 {
			t.Fatalf("Cup returned %d", c)
		}
		seen[c]++
	}
	for i := 0; i < 3; i++ {
		if seen[i] < 800 {
			t.Errorf("cup %d drawn %d times out of 3000", i, seen[i])
		}
	}
}

func TestSeededIsReproducible(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 50; i++ {
		a1, a2 := a.Pair(3)
		b1, b2 := b.Pair(3)
		if a1 != b1 || a2 != b2 {
			t.Fatalf("draw %d diverged: (%d,%d) vs (%d,%d)", i, a1, a2, b1, b2)
		}
	}
}

func TestPairPanicsBelowTwoCups(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pair(1) did not panic")
		}
	}()
	NewSeeded(1).Pair(1)
}
