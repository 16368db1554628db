// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestState_RoundTrip(t *testing.T) {
	allVersions(t, func(t *testing.T, g *Generator) {
		g.Word()
		g.Word()
		clone, err := FromState(g.GetState())
		if err != nil {
			t.Fatal(err)
		}
		if err := g.SetState(g.GetState()); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 200; i++ {
			if x, y := g.Word(), clone.Word(); x != y {
				t.Fatalf("diverged at %d: %d != %d", i, x, y)
			}
		}
	})
}

func TestState_EqualStatesEqualStreams(t *testing.T) {
	allVersions(t, func(t *testing.T, g *Generator) {
		g.Word()
		a := g.GetState()
		clone, err := FromState(a)
		if err != nil {
			t.Fatal(err)
		}
		b := clone.GetState()
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("state mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestState_VersionMismatch(t *testing.T) {
	g := newTestGen(t, VersionXSHRR64, WithSeed(IntSeed(1)))
	other := newTestGen(t, VersionXSHRS64, WithSeed(IntSeed(1)))

	before := g.GetState()
	err := g.SetState(other.GetState())
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
	// the failed restore must leave the generator untouched
	if got := g.GetState(); got != before {
		t.Fatalf("%v != %v", got, before)
	}
}

func TestState_MarshalBinary(t *testing.T) {
	allVersions(t, func(t *testing.T, g *Generator) {
		g.Word()
		want := g.GetState()
		data, err := want.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		var got State
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	})
}

func TestState_MarshalText(t *testing.T) {
	allVersions(t, func(t *testing.T, g *Generator) {
		g.Word()
		want := g.GetState()
		text, err := want.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("state:%s", text)
		var got State
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	})
}

func TestState_UnmarshalErrors(t *testing.T) {
	var s State
	for _, data := range [][]byte{
		nil,
		[]byte("bogus"),
		[]byte("pcgstate:"),
		[]byte("pcgstate:\x05abcde"),
	} {
		if err := s.UnmarshalBinary(data); err == nil {
			t.Fatalf("accepted %q", data)
		}
	}
	for _, text := range []string{
		"",
		"a:b",
		"tag:1:2:notanumber",
		"tag:1:2:3:4",
	} {
		if err := s.UnmarshalText([]byte(text)); err == nil {
			t.Fatalf("accepted %q", text)
		}
	}
}

func TestNewByName(t *testing.T) {
	for _, version := range Versions() {
		byName, err := NewByName(version, WithSeed(IntSeed(7)))
		if err != nil {
			t.Fatal(err)
		}
		if byName.Version() != version {
			t.Fatalf("%q != %q", byName.Version(), version)
		}
	}
	_, err := NewByName("pcgrandom.NoSuchGenerator")
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("unknown name: %v", err)
	}
}

func TestFromState_UnknownVersion(t *testing.T) {
	_, err := FromState(State{Version: "pcgrandom.NoSuchGenerator"})
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("unknown version: %v", err)
	}
}

func TestState_CrossImplementationShape(t *testing.T) {
	// the container carries the reference tags and full parameters, so
	// snapshots are portable to other implementations of the family
	g := newTestGen(t, VersionXSHRR64, WithSeed(IntSeed(12345)))
	s := g.GetState()
	if s.Version != "pcgrandom.PCG_XSH_RR_V0" {
		t.Fatalf("tag %q", s.Version)
	}
	if s.Multiplier.Lo != 6364136223846793005 {
		t.Fatalf("multiplier %v", s.Multiplier)
	}
	if s.Increment.Lo != 1442695040888963407 {
		t.Fatalf("increment %v", s.Increment)
	}
}
