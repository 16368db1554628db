// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit words. All
// arithmetic wraps modulo 2^128, matching two's-complement wraparound,
// which is exactly what the 128-bit LCG needs.
type Uint128 struct {
	Hi, Lo uint64
}

func u128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// Add returns u + v mod 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return u128(hi, lo)
}

// Sub returns u - v mod 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return u128(hi, lo)
}

// Mul returns u * v mod 2^128. The cross terms that would overflow past
// bit 127 are discarded.
func (u Uint128) Mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	hi += u.Hi*v.Lo + u.Lo*v.Hi
	return u128(hi, lo)
}

// Shl returns u << k mod 2^128 for 0 <= k < 128.
func (u Uint128) Shl(k uint) Uint128 {
	if k >= 64 {
		return u128(u.Lo<<(k-64), 0)
	}
	if k == 0 {
		return u
	}
	return u128(u.Hi<<k|u.Lo>>(64-k), u.Lo<<k)
}

// Shr returns u >> k for 0 <= k < 128.
func (u Uint128) Shr(k uint) Uint128 {
	if k >= 64 {
		return u128(0, u.Hi>>(k-64))
	}
	if k == 0 {
		return u
	}
	return u128(u.Hi>>k, u.Lo>>k|u.Hi<<(64-k))
}

// Or returns the bitwise or of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return u128(u.Hi|v.Hi, u.Lo|v.Lo)
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal
// to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Len returns the minimum number of bits required to represent u.
func (u Uint128) Len() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// Bit returns bit i of u, for 0 <= i < 128.
func (u Uint128) Bit(i int) uint {
	if i >= 64 {
		return uint(u.Hi >> (uint(i) - 64) & 1)
	}
	return uint(u.Lo >> uint(i) & 1)
}

// mask reduces u modulo 2^bits, for bits equal to 64 or 128.
func (u Uint128) mask(bitCount uint) Uint128 {
	if bitCount >= 128 {
		return u
	}
	if bitCount >= 64 {
		return u128(u.Hi&(^uint64(0)>>(128-bitCount)), u.Lo)
	}
	return u128(0, u.Lo&(^uint64(0)>>(64-bitCount)))
}

// quoRem64 returns the quotient and remainder of u divided by d. The
// quotient may need all 128 bits; the remainder always fits in 64.
func (u Uint128) quoRem64(d uint64) (q Uint128, r uint64) {
	if u.Hi < d {
		lo, rem := bits.Div64(u.Hi, u.Lo, d)
		return u128(0, lo), rem
	}
	hi, rem := u.Hi/d, u.Hi%d
	lo, rem := bits.Div64(rem, u.Lo, d)
	return u128(hi, lo), rem
}

// div64 returns u / d under the precondition u.Hi < d, so that the
// quotient fits in a uint64.
func (u Uint128) div64(d uint64) uint64 {
	q, _ := bits.Div64(u.Hi, u.Lo, d)
	return q
}

// String formats u in decimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return formatUint(u.Lo)
	}
	var buf [39]byte
	i := len(buf)
	for !u.IsZero() {
		var r uint64
		u, r = u.quoRem64(10)
		i--
		buf[i] = byte('0' + r)
	}
	return string(buf[i:])
}

func formatUint(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// ParseUint128 parses a decimal string into a Uint128. It errors on
// empty or non-digit input and on values of 2^128 or more.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, errors.Wrap(ErrRange, "empty uint128 literal")
	}
	// largest value that can still be multiplied by 10: (2^128-1)/10
	maxDiv10 := u128(0x1999999999999999, 0x9999999999999999)
	var u Uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint128{}, errors.Wrapf(ErrRange,
				"bad digit %q in uint128 literal %q", c, s)
		}
		if u.Cmp(maxDiv10) > 0 {
			return Uint128{}, errors.Wrapf(ErrRange,
				"uint128 literal %q overflows", s)
		}
		shifted := u.Mul(u128(0, 10))
		u = shifted.Add(u128(0, uint64(c-'0')))
		if u.Cmp(shifted) < 0 {
			return Uint128{}, errors.Wrapf(ErrRange,
				"uint128 literal %q overflows", s)
		}
	}
	return u, nil
}
