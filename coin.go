// Copyright (C) 2018. See AUTHORS.

package pcgrandom

// Coin is a simple struct to let us get random bools and make minimum
// calls to the random number generator: it buffers one output word and
// deals it out a bit at a time.
type Coin struct {
	src  UniformSource
	val  uint64
	bits uint
}

// NewCoin returns a Coin drawing words from src.
func NewCoin(src UniformSource) *Coin {
	return &Coin{src: src}
}

// Toss returns a random bool, consuming one word per OutputBits calls.
func (c *Coin) Toss() (val bool) {
	if c.bits == 0 {
		c.val = c.src.Word()
		c.bits = c.src.OutputBits()
	}
	c.bits--
	val = c.val&1 > 0
	c.val >>= 1
	return val
}
