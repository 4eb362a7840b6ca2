// Package random isolates every random draw the simulation makes behind a
// single seedable source.
package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation depends on.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// New returns a Source seeded with seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Clock returns a Source seeded from the wall clock.
func Clock() Source {
	return New(time.Now().UnixNano())
}

// Sequence replays a fixed list of Float64 values in a loop. Intn derives
// its result from the next value, so picks stay reproducible.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values. An empty list yields zeros.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
