// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import "math/bits"

// Defaults from the PCG reference implementation: the multiplier is
// from Table 4 of L'Ecuyer's paper, the increment is
// PCG_DEFAULT_INCREMENT_128. Split into 64-bit halves because Go has no
// 128-bit literals.
//
// multiplier = 47026247687942121848144207491837523525
// increment  = 117397592171526113268558934119004209487
const (
	defaultMulHi128 = 2549297995355413924
	defaultMulLo128 = 4865540595714422341
	defaultIncHi128 = 6364136223846793005
	defaultIncLo128 = 1442695040888963407
)

// core128 is a 128-bit-state LCG combined with the 64-bit XSL-RR output
// permutation. Unlike the 64-bit cores it advances the state first and
// permutes the new state ("output-current").
type core128 struct {
	state Uint128
	mul   Uint128
	inc   Uint128
}

// step advances the underlying LCG a single step, wrapping mod 2^128.
func (c *core128) step() {
	c.state = c.state.Mul(c.mul).Add(c.inc)
}

// word advances the state and returns the XSL-RR permutation of the new
// state: xor the high and low halves and rotate right by the top six
// bits.
func (c *core128) word() uint64 {
	c.step()
	return bits.RotateLeft64(c.state.Hi^c.state.Lo, -int(c.state.Hi>>58))
}

// seed sets the state from an integer seed using the same one-step
// recipe as the 64-bit cores: state = (inc + seed)*mul + inc.
func (c *core128) seed(iseed Uint128) {
	c.state = c.inc.Add(iseed).Mul(c.mul).Add(c.inc)
}

// advance moves the state delta steps forward via binary powering over
// the affine composition, exactly as core64.advance but in 128-bit
// arithmetic.
func (c *core128) advance(delta Uint128) {
	an, cn := u128(0, 1), u128(0, 0)
	for i := delta.Len() - 1; i >= 0; i-- {
		an, cn = an.Mul(an), an.Mul(cn).Add(cn)
		if delta.Bit(i) == 1 {
			an, cn = c.mul.Mul(an), c.mul.Mul(cn).Add(c.inc)
		}
	}
	c.state = c.state.Mul(an).Add(cn)
}

func (c *core128) snapshot() (mul, inc, state Uint128) {
	return c.mul, c.inc, c.state
}

func (c *core128) restore(mul, inc, state Uint128) {
	c.mul, c.inc, c.state = mul, inc, state
}
