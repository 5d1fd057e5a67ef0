// Package rng is the single source of non-determinism for the engine.
// Every probabilistic decision funnels through a Source so that tests
// can fix a seed and assert exact outcomes.
package rng

import "math/rand/v2"

// Source wraps a seedable PRNG.
type Source struct {
	r *rand.Rand
}

// New creates a Source from a fixed seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Coin returns true with probability 1/2.
func (s *Source) Coin() bool {
	return s.r.IntN(2) == 0
}

// Shuffle randomizes the order of n elements via swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Choice is one weighted option.
type Choice[T any] struct {
	Item   T
	Weight int
}

// Weighted returns one item with probability proportional to its weight.
// Iteration is in slice order, so ties between adjacent weights are
// deterministic given the draw. Returns false for an empty or
// zero-total-weight list.
func Weighted[T any](s *Source, choices []Choice[T]) (T, bool) {
	var zero T
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return zero, false
	}
	draw := s.r.IntN(total)
	cum := 0
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		cum += c.Weight
		if draw < cum {
			return c.Item, true
		}
	}
	return zero, false
}

// Pick returns a uniform element of items, or false if items is empty.
func Pick[T any](s *Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[s.r.IntN(len(items))], true
}

// Gaussian returns a bell-curve value in [0, 1], centered at 0.5. A
// draw landing outside the range falls back to a uniform draw instead
// of clamping, so the endpoints are not over-weighted.
func (s *Source) Gaussian() float64 {
	v := 0.5 + s.r.NormFloat64()/7.0
	if v < 0 || v > 1 {
		return s.r.Float64()
	}
	return v
}
