// Package random picks cups for the hidden ball and the shuffle swaps.
package random

import (
	"fmt"
	"math/rand"
	"time"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Picker draws cup indices from an injected source.
type Picker struct {
	src Source
}

// NewPicker wraps src.
func NewPicker(src Source) *Picker {
	return &Picker{src: src}
}

// NewSeeded returns a picker over math/rand seeded with seed. A zero seed
// uses the current time.
func NewSeeded(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewPicker(rand.New(rand.NewSource(seed)))
}

// Cup returns a uniformly random index in [0, count).
func (p *Picker) Cup(count int) int {
	if count < 1 {
		panic(fmt.Sprintf("random: cannot pick from %d cups", count))
	}
	return p.src.Intn(count)
}

// Pair returns two distinct indices in [0, count). The second index is
// redrawn until it differs from the first.
func (p *Picker) Pair(count int) (int, int) {
	if count < 2 {
		panic(fmt.Sprintf("random: cannot pick a pair from %d cups", count))
	}
	first := p.src.Intn(count)
	second := p.src.Intn(count)
	for second == first {
		second = p.src.Intn(count)
	}
	return first, second
}
