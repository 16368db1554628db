// Copyright (C) 2018. See AUTHORS.

package pcgrandom

// UniformSource is the capability the distribution and sequence helpers
// consume: a stream of uniform words plus the derived primitives. It is
// an explicit parameter rather than an embedded base so that any
// uniform generator can drive the higher layers.
//
// *Generator implements UniformSource.
type UniformSource interface {
	// Word returns one output word, zero-extended to 64 bits.
	Word() uint64
	// OutputBits returns the word width.
	OutputBits() uint
	// Bits returns a uniform k-bit integer for 0 <= k <= 64.
	Bits(k int) (uint64, error)
	// Below returns a uniform integer in [0, n) without modulo bias.
	Below(n uint64) (uint64, error)
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

var _ UniformSource = (*Generator)(nil)
