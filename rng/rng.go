// SPDX-License-Identifier: MIT

// Package rng provides a deterministic 64-bit xorshift generator for
// reproducible test fixtures.
//
// The step is
//
//	state ^= state << 7
//	state ^= state >> 9
//
// and each sample is state / 2^64, a float64 in [0, 1). Given the same seed
// the sequence is identical bit for bit on every platform.
package rng

import (
	"math"
	"math/rand"
)

// Xor64Init is the documented default seed.
const Xor64Init uint64 = 88172645463325252

// belowOne is the largest float64 strictly less than 1.
var belowOne = math.Nextafter(1, 0)

// Xor64 advances *state by one xorshift step and returns the new state
// scaled into [0, 1).
// A zero state is a fixed point and yields 0 forever.
func Xor64(state *uint64) float64 {
	s := *state
	s ^= s << 7
	s ^= s >> 9
	*state = s

	// float64(s) rounds to nearest, so states within 2^10 of 2^64 would hit 1.0.
	v := float64(s) * 0x1p-64
	if v >= 1 {
		return belowOne
	}

	return v
}

// Source is a rand.Source64 over the xor64 step.
// It is not safe for concurrent use.
type Source struct {
	state uint64
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns a Source seeded with seed; zero selects Xor64Init.
func NewSource(seed uint64) *Source {
	s := &Source{}
	s.reset(seed)

	return s
}

func (s *Source) reset(seed uint64) {
	if seed == 0 {
		seed = Xor64Init
	}
	s.state = seed
}

// Seed implements rand.Source. Zero selects Xor64Init.
func (s *Source) Seed(seed int64) {
	s.reset(uint64(seed))
}

// State returns the current generator state.
func (s *Source) State() uint64 {
	return s.state
}

// Float64 returns the next sample in [0, 1).
func (s *Source) Float64() float64 {
	return Xor64(&s.state)
}

// Uint64 implements rand.Source64 and returns the next raw state.
func (s *Source) Uint64() uint64 {
	Xor64(&s.state)

	return s.state
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
