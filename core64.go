// Copyright (C) 2015 Space Monkey, Inc.

package pcgrandom

import "math/bits"

// Knuth's MMIX constants, also the defaults in the PCG reference
// implementation.
const (
	defaultMultiplier64 = 6364136223846793005
	defaultIncrement64  = 1442695040888963407
)

// core64 is a 64-bit-state LCG combined with a 32-bit output
// permutation. Both 32-bit output families (XSH-RR and XSH-RS) share
// this core; they differ only in the permutation function and always
// compute the output from the state before it is advanced.
type core64 struct {
	state uint64
	mul   uint64
	inc   uint64
	out   func(state uint64) uint32
}

// step advances the underlying LCG a single step. Native uint64
// arithmetic wraps modulo 2^64, which is the generator's modulus.
func (c *core64) step() {
	c.state = c.state*c.mul + c.inc
}

// word returns the next output word, zero-extended to 64 bits. Output
// is computed from the pre-advance state ("output-previous").
func (c *core64) word() uint64 {
	out := c.out(c.state)
	c.step()
	return uint64(out)
}

// seed sets the state from an integer seed.
//
// This is equivalent to zeroing the state, stepping once, adding the
// seed, and stepping again, and matches the PCG reference
// initialization bit for bit.
func (c *core64) seed(iseed Uint128) {
	c.state = (c.inc+iseed.Lo)*c.mul + c.inc
}

// advance moves the state delta steps forward in O(log delta) time via
// left-to-right binary powering over the affine composition
// (a, c) o (a', c') = (a*a', a*c' + c). Negative jumps arrive here
// already reduced modulo 2^64.
func (c *core64) advance(delta Uint128) {
	n := delta.Lo
	an, cn := uint64(1), uint64(0)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		an, cn = an*an, an*cn+cn
		if n>>uint(i)&1 == 1 {
			an, cn = c.mul*an, c.mul*cn+c.inc
		}
	}
	c.state = c.state*an + cn
}

func (c *core64) snapshot() (mul, inc, state Uint128) {
	return u128(0, c.mul), u128(0, c.inc), u128(0, c.state)
}

func (c *core64) restore(mul, inc, state Uint128) {
	c.mul, c.inc, c.state = mul.Lo, inc.Lo, state.Lo
}

// xshRR is the xor-shift-high / random-rotate permutation: fold the
// high bits down with an xor-shift, take 32 bits, and rotate them right
// by the top five bits of the state.
func xshRR(state uint64) uint32 {
	xored := uint32((state ^ state>>18) >> 27)
	return bits.RotateLeft32(xored, -int(state>>59))
}

// xshRS is the xor-shift / random-shift permutation: xor-shift, then a
// variable right shift selected by the top three bits of the state.
func xshRS(state uint64) uint32 {
	return uint32((state ^ state>>22) >> (22 + state>>61))
}
