// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import "github.com/pkg/errors"

// The family table is closed and built at init time: there are exactly
// three supported generators and no plugin mechanism.
var variantsByName = map[string]*variant{
	VersionXSHRR64:  &variantXSHRR64,
	VersionXSHRS64:  &variantXSHRS64,
	VersionXSLRR128: &variantXSLRR128,
}

// Versions lists the tags of the supported generator families.
func Versions() []string {
	return []string{VersionXSHRR64, VersionXSHRS64, VersionXSLRR128}
}

// NewByName constructs a generator from its version tag. Unknown tags
// are rejected with the same error class as a SetState version
// mismatch.
func NewByName(name string, opts ...Option) (*Generator, error) {
	v, ok := variantsByName[name]
	if !ok {
		return nil, errors.Wrapf(ErrVersionMismatch,
			"unknown generator %q", name)
	}
	return newGenerator(v, opts)
}

// FromState reconstructs a generator from a state snapshot, typically
// one that has round-tripped through an external serialization.
func FromState(s State) (*Generator, error) {
	v, ok := variantsByName[s.Version]
	if !ok {
		return nil, errors.Wrapf(ErrVersionMismatch,
			"unknown generator %q", s.Version)
	}
	b := v.stateBits
	g := &Generator{
		v:    v,
		core: v.newCore(s.Multiplier.mask(b), s.Increment.mask(b)),
	}
	g.core.restore(
		s.Multiplier.mask(b), s.Increment.mask(b), s.State.mask(b))
	return g, nil
}
