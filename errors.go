// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import "github.com/pkg/errors"

// Sentinel errors for the failure classes the package can report.
// Callers should match them with errors.Is; the values returned from
// the API wrap these with context about the offending argument.
var (
	// ErrBadMultiplier reports an LCG multiplier that is not congruent
	// to 1 modulo 4. Such multipliers cannot give a full-period LCG.
	ErrBadMultiplier = errors.New("LCG multiplier must be of the form 4k+1")

	// ErrVersionMismatch reports a state container or generator name
	// that does not identify the target generator family.
	ErrVersionMismatch = errors.New("generator version mismatch")

	// ErrSeedTooWide reports a request for more seed bits than the
	// hash-based seed derivation can supply (512).
	ErrSeedTooWide = errors.New("seed request exceeds hash capacity")

	// ErrRange reports an argument outside its documented domain.
	ErrRange = errors.New("argument out of range")
)
