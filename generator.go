// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"github.com/pkg/errors"
)

// core is the state machine under a Generator: one of the fixed PCG
// cores. Implementations are a closed set; there is no plugin surface.
type core interface {
	// word returns the next output word, zero-extended to 64 bits,
	// consuming exactly one state transition.
	word() uint64
	// seed derives the initial state from an integer seed.
	seed(iseed Uint128)
	// advance jumps the state forward by delta steps, delta already
	// reduced modulo 2^W.
	advance(delta Uint128)
	snapshot() (mul, inc, state Uint128)
	restore(mul, inc, state Uint128)
}

// variant describes one member of the PCG family: its identity tag, the
// widths, the default LCG parameters and how to build its core.
type variant struct {
	tag        string
	stateBits  uint
	outputBits uint
	defaultMul Uint128
	baseInc    Uint128
	newCore    func(mul, inc Uint128) core
}

// Version tags identifying the supported generator families. The
// strings match the Python pcgrandom library so that marshalled state
// is portable across implementations.
const (
	VersionXSHRR64  = "pcgrandom.PCG_XSH_RR_V0"
	VersionXSHRS64  = "pcgrandom.PCG_XSH_RS_V0"
	VersionXSLRR128 = "pcgrandom.PCG_XSL_RR_V0"
)

var (
	variantXSHRR64 = variant{
		tag:        VersionXSHRR64,
		stateBits:  64,
		outputBits: 32,
		defaultMul: u128(0, defaultMultiplier64),
		baseInc:    u128(0, defaultIncrement64),
		newCore: func(mul, inc Uint128) core {
			return &core64{mul: mul.Lo, inc: inc.Lo, out: xshRR}
		},
	}
	variantXSHRS64 = variant{
		tag:        VersionXSHRS64,
		stateBits:  64,
		outputBits: 32,
		defaultMul: u128(0, defaultMultiplier64),
		baseInc:    u128(0, defaultIncrement64),
		newCore: func(mul, inc Uint128) core {
			return &core64{mul: mul.Lo, inc: inc.Lo, out: xshRS}
		},
	}
	variantXSLRR128 = variant{
		tag:        VersionXSLRR128,
		stateBits:  128,
		outputBits: 64,
		defaultMul: u128(defaultMulHi128, defaultMulLo128),
		baseInc:    u128(defaultIncHi128, defaultIncLo128),
		newCore: func(mul, inc Uint128) core {
			return &core128{mul: mul, inc: inc}
		},
	}
)

// Generator is a PCG pseudo-random generator. It owns its parameters
// and state exclusively; two generators never share state, and a single
// generator is not safe for concurrent use without external locking.
type Generator struct {
	v    *variant
	core core
}

type config struct {
	seed     Seed
	sequence *Uint128
	mul      *Uint128
}

// An Option adjusts generator construction.
type Option func(*config)

// WithSeed selects the seed source. The default (and a nil Seed) is
// system entropy.
func WithSeed(s Seed) Option {
	return func(c *config) { c.seed = s }
}

// WithSequence selects the output stream for a fixed seed by perturbing
// the LCG increment: increment = 2*sequence + base increment mod 2^W.
// Sequence 0 is the default stream.
func WithSequence(seq uint64) Option {
	return WithSequence128(u128(0, seq))
}

// WithSequence128 is WithSequence for full-width 128-bit selectors.
func WithSequence128(seq Uint128) Option {
	return func(c *config) { v := seq; c.sequence = &v }
}

// WithMultiplier overrides the LCG multiplier. The default is carefully
// chosen and well tested; other values must still be congruent to 1
// modulo 4 and may give poor-quality generators.
func WithMultiplier(mul uint64) Option {
	return WithMultiplier128(u128(0, mul))
}

// WithMultiplier128 is WithMultiplier for full-width 128-bit values.
func WithMultiplier128(mul Uint128) Option {
	return func(c *config) { v := mul; c.mul = &v }
}

// NewXSHRR64 returns a PCG-XSH-RR generator: 64 bits of state, 32-bit
// output words, period 2^64.
func NewXSHRR64(opts ...Option) (*Generator, error) {
	return newGenerator(&variantXSHRR64, opts)
}

// NewXSHRS64 returns a PCG-XSH-RS generator: 64 bits of state, 32-bit
// output words, period 2^64.
func NewXSHRS64(opts ...Option) (*Generator, error) {
	return newGenerator(&variantXSHRS64, opts)
}

// NewXSLRR128 returns a PCG-XSL-RR generator: 128 bits of state, 64-bit
// output words, period 2^128.
func NewXSLRR128(opts ...Option) (*Generator, error) {
	return newGenerator(&variantXSLRR128, opts)
}

// Synonyms for the common cases, mirroring the Python library's
// PCG32/PCG64 aliases. These may be repointed at later
// family members over time; code that needs long-term reproducibility
// should call the explicit constructor instead.
var (
	NewPCG32 = NewXSHRR64
	NewPCG64 = NewXSLRR128
)

func newGenerator(v *variant, opts []Option) (*Generator, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	mul := v.defaultMul
	if cfg.mul != nil {
		mul = cfg.mul.mask(v.stateBits)
	}
	if mul.Lo&3 != 1 {
		return nil, errors.Wrapf(ErrBadMultiplier, "multiplier %s", mul)
	}

	// increment = 2*sequence + base increment, odd by construction
	// since the base increment is odd.
	inc := v.baseInc
	if cfg.sequence != nil {
		inc = cfg.sequence.Shl(1).Add(v.baseInc).mask(v.stateBits)
	}

	g := &Generator{v: v, core: v.newCore(mul, inc)}
	if err := g.Seed(cfg.seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed reinitializes the generator state from the given seed source
// without touching the multiplier or increment. A nil seed draws fresh
// system entropy.
func (g *Generator) Seed(s Seed) error {
	var (
		iseed Uint128
		err   error
	)
	if s == nil {
		iseed, err = entropySeed(g.v.stateBits)
	} else {
		iseed, err = s.seedValue(g.v.stateBits)
	}
	if err != nil {
		return err
	}
	g.core.seed(iseed)
	return nil
}

// Version returns the tag identifying this generator's family.
func (g *Generator) Version() string {
	return g.v.tag
}

// OutputBits returns the width of the words produced by Word.
func (g *Generator) OutputBits() uint {
	return g.v.outputBits
}

// StateBits returns the width of the generator state in bits.
func (g *Generator) StateBits() uint {
	return g.v.stateBits
}

// Word returns the next output word, zero-extended to 64 bits. Each
// call consumes exactly one state transition.
func (g *Generator) Word() uint64 {
	return g.core.word()
}

// Bits returns a uniformly distributed k-bit integer, for 0 <= k <= 64.
// It consumes exactly ceil(k/OutputBits) words; in particular Bits(0)
// returns 0 without touching the state.
func (g *Generator) Bits(k int) (uint64, error) {
	if k < 0 {
		return 0, errors.Wrapf(ErrRange,
			"number of bits should be nonnegative, got %d", k)
	}
	if k > 64 {
		return 0, errors.Wrapf(ErrRange,
			"at most 64 bits per call, got %d", k)
	}
	if k == 0 {
		return 0, nil
	}
	o := g.v.outputBits
	numWords := (uint(k) + o - 1) / o
	var acc uint64
	for i := uint(0); i < numWords; i++ {
		acc = acc<<o | g.core.word()
	}
	return acc >> (numWords*o - uint(k)), nil
}

// Below returns an integer uniformly distributed in [0, n), with no
// modulo bias. It folds words into an accumulated range rather than
// discarding rejected draws, so it consumes the minimum number of
// words for the requested bound; Below(1) consumes none at all.
func (g *Generator) Below(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errors.Wrap(ErrRange, "empty range for Below(0)")
	}
	o := g.v.outputBits

	// Invariant: x is uniformly distributed in [0, h). Once the
	// remainder of h by n is at most x, the accumulated entropy is
	// enough to answer without bias; until then fold in another word.
	// h never exceeds n << o, so 128 bits always suffice.
	x, h := u128(0, 0), u128(0, 1)
	for {
		q, r := h.quoRem64(n)
		if x.Cmp(u128(0, r)) >= 0 {
			return x.Sub(u128(0, r)).div64(q.Lo), nil
		}
		x = x.Shl(o).Or(u128(0, g.core.word()))
		h = u128(0, r).Shl(o)
	}
}

// Float64 returns a uniformly distributed float in [0, 1), using 53
// bits so that every representable value is equally likely.
func (g *Generator) Float64() float64 {
	bits, _ := g.Bits(53)
	return float64(bits) / (1 << 53)
}

// Advance jumps the generator n steps forward, or backward for negative
// n, in O(log |n|) time. Advance(-k) exactly undoes Advance(k).
func (g *Generator) Advance(n int64) {
	var hi uint64
	if n < 0 {
		hi = ^uint64(0)
	}
	g.core.advance(u128(hi, uint64(n)).mask(g.v.stateBits))
}

// AdvanceDelta jumps the generator forward by a raw W-bit step count,
// for jumps too large for Advance (such as half the period).
func (g *Generator) AdvanceDelta(delta Uint128) {
	g.core.advance(delta.mask(g.v.stateBits))
}

// Jumpahead is an alias for Advance.
func (g *Generator) Jumpahead(n int64) {
	g.Advance(n)
}
