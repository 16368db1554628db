// Copyright (C) 2018. See AUTHORS.

// Package pcgrandom implements the PCG family of pseudo-random number
// generators: a linear congruential generator whose state is passed
// through a bit permutation before being exposed, giving good
// statistical quality with O(1) state and a full 2^W period.
//
// Three families are provided: PCG-XSH-RR and PCG-XSH-RS (64-bit
// state, 32-bit output) and PCG-XSL-RR (128-bit state, 64-bit output).
// All are deterministic given a seed, support O(log n) jumps forward
// and backward, unbiased bounded draws, and versioned state snapshots
// that are portable across processes and implementations.
//
// Generators are not cryptographically secure, and a single generator
// is not safe for concurrent use without external locking.
package pcgrandom
