// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

// State is a snapshot of everything a generator needs to reproduce its
// future output: the family tag plus the LCG parameters and state.
// Two equal State values imply identical subsequent output streams.
// The zero-extension to 128 bits makes the container uniform across
// families; 64-bit families only ever populate the low words.
type State struct {
	Version    string
	Multiplier Uint128
	Increment  Uint128
	State      Uint128
}

// GetState captures the generator's current state. The result can be
// stored, marshalled, compared, and later passed to SetState.
func (g *Generator) GetState() State {
	mul, inc, state := g.core.snapshot()
	return State{
		Version:    g.v.tag,
		Multiplier: mul,
		Increment:  inc,
		State:      state,
	}
}

// SetState restores a snapshot previously produced by GetState. The
// snapshot must come from the same generator family; on a version
// mismatch the generator is left untouched and an error wrapping
// ErrVersionMismatch is returned.
func (g *Generator) SetState(s State) error {
	if s.Version != g.v.tag {
		return errors.Wrapf(ErrVersionMismatch,
			"state with version %q passed to generator %q",
			s.Version, g.v.tag)
	}
	b := g.v.stateBits
	g.core.restore(
		s.Multiplier.mask(b), s.Increment.mask(b), s.State.mask(b))
	return nil
}

const (
	stateMagic = "pcgstate:"

	// magic + version length byte + three big-endian 128-bit words
	stateOverhead = len(stateMagic) + 1 + 3*16
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (s State) MarshalBinary() ([]byte, error) {
	if len(s.Version) > 255 {
		return nil, errors.Wrapf(ErrRange,
			"version tag too long: %d bytes", len(s.Version))
	}
	b := make([]byte, 0, stateOverhead+len(s.Version))
	b = append(b, stateMagic...)
	b = append(b, byte(len(s.Version)))
	b = append(b, s.Version...)
	for _, w := range []Uint128{s.Multiplier, s.Increment, s.State} {
		b = binary.BigEndian.AppendUint64(b, w.Hi)
		b = binary.BigEndian.AppendUint64(b, w.Lo)
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) < len(stateMagic)+1 ||
		string(data[:len(stateMagic)]) != stateMagic {
		return errors.Wrap(ErrVersionMismatch, "invalid state encoding")
	}
	rest := data[len(stateMagic):]
	vlen := int(rest[0])
	rest = rest[1:]
	if len(rest) != vlen+3*16 {
		return errors.Wrapf(ErrVersionMismatch,
			"truncated state encoding: %d trailing bytes, want %d",
			len(rest), vlen+3*16)
	}
	version := string(rest[:vlen])
	rest = rest[vlen:]
	words := make([]Uint128, 3)
	for i := range words {
		words[i] = u128(
			binary.BigEndian.Uint64(rest[0:8]),
			binary.BigEndian.Uint64(rest[8:16]),
		)
		rest = rest[16:]
	}
	s.Version = version
	s.Multiplier, s.Increment, s.State = words[0], words[1], words[2]
	return nil
}

// MarshalText implements encoding.TextMarshaler. The format is
// "version:multiplier:increment:state" with decimal integers, chosen
// so snapshots stay legible in logs and fixtures.
func (s State) MarshalText() ([]byte, error) {
	if strings.Contains(s.Version, ":") {
		return nil, errors.Wrapf(ErrRange,
			"version tag %q may not contain ':'", s.Version)
	}
	parts := []string{
		s.Version,
		s.Multiplier.String(),
		s.Increment.String(),
		s.State.String(),
	}
	return []byte(strings.Join(parts, ":")), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ":")
	if len(parts) != 4 {
		return errors.Wrapf(ErrVersionMismatch,
			"state text has %d fields, want 4", len(parts))
	}
	words := make([]Uint128, 3)
	for i, part := range parts[1:] {
		w, err := ParseUint128(part)
		if err != nil {
			return errors.WithMessagef(err, "state field %d", i+1)
		}
		words[i] = w
	}
	s.Version = parts[0]
	s.Multiplier, s.Increment, s.State = words[0], words[1], words[2]
	return nil
}
