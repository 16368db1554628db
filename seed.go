// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	cryptorand "crypto/rand"
	"crypto/sha512"
	"encoding/binary"

	"github.com/pkg/errors"
)

// A Seed deterministically supplies the initial state bits for a
// generator. The set of implementations is closed: integer seeds are
// used as-is after reduction modulo 2^W, byte and string seeds go
// through a truncated SHA-512 digest. A nil Seed asks for W bits of
// system entropy instead.
type Seed interface {
	seedValue(bitCount uint) (Uint128, error)
}

// IntSeed seeds a generator directly from an integer. The value is
// reduced modulo 2^W, so seed and seed + 2^W are equivalent.
type IntSeed uint64

func (s IntSeed) seedValue(bitCount uint) (Uint128, error) {
	return u128(0, uint64(s)).mask(bitCount), nil
}

// Uint128Seed seeds a generator from a full-width 128-bit integer.
type Uint128Seed Uint128

func (s Uint128Seed) seedValue(bitCount uint) (Uint128, error) {
	return Uint128(s).mask(bitCount), nil
}

// BytesSeed seeds a generator from arbitrary bytes. The seed is the
// SHA-512 digest of the bytes truncated to the requested width, so any
// two byte strings with distinct digests give distinct seeds.
type BytesSeed []byte

func (s BytesSeed) seedValue(bitCount uint) (Uint128, error) {
	digest := sha512.Sum512(s)
	if bitCount > 8*uint(len(digest)) {
		return Uint128{}, errors.Wrapf(ErrSeedTooWide,
			"cannot provide %d seed bits from a %d-bit digest",
			bitCount, 8*len(digest))
	}
	if bitCount > 128 {
		return Uint128{}, errors.Wrapf(ErrRange,
			"seed container holds at most 128 bits, %d requested", bitCount)
	}
	return truncateBigEndian(digest[:], bitCount), nil
}

// StringSeed seeds a generator from text, hashed as its UTF-8 bytes.
type StringSeed string

func (s StringSeed) seedValue(bitCount uint) (Uint128, error) {
	return BytesSeed(s).seedValue(bitCount)
}

// entropySeed draws bitCount bits from the operating system entropy
// source. Failures are environment errors and are propagated, not
// masked.
func entropySeed(bitCount uint) (Uint128, error) {
	buf := make([]byte, (bitCount+7)/8)
	if _, err := cryptorand.Read(buf); err != nil {
		return Uint128{}, errors.Wrap(err, "reading system entropy")
	}
	return truncateBigEndian(buf, bitCount), nil
}

// truncateBigEndian interprets the leading ceil(bitCount/8) bytes of b
// as a big-endian integer and discards any excess low-order bits.
func truncateBigEndian(b []byte, bitCount uint) Uint128 {
	numBytes := (bitCount + 7) / 8
	excess := 8*numBytes - bitCount

	var word [16]byte
	copy(word[16-numBytes:], b[:numBytes])
	v := u128(
		binary.BigEndian.Uint64(word[:8]),
		binary.BigEndian.Uint64(word[8:]),
	)
	return v.Shr(excess)
}
