// Copyright (C) 2018. See AUTHORS.

// Package global exposes one lazily-constructed, entropy-seeded
// PCG-XSH-RR generator through package-level functions, for callers who
// do not want to manage an instance of their own. It is a convenience
// wrapper around package pcgrandom; the core stays free of process-wide
// state.
//
// The shared instance is created on first use and, like any single
// generator, is not safe for concurrent use without external locking.
// Code that needs reproducibility or independence should construct its
// own generators instead.
package global

import (
	"sync"

	"github.com/mdickinson/pcgrandom"
)

var (
	once  sync.Once
	inst  *pcgrandom.Generator
	gauss *pcgrandom.Gaussian
)

// Default returns the shared generator, creating and entropy-seeding it
// on first use. Creation failures mean the OS entropy source is
// unavailable, which is not recoverable here.
func Default() *pcgrandom.Generator {
	once.Do(func() {
		g, err := pcgrandom.NewXSHRR64()
		if err != nil {
			panic(err)
		}
		inst = g
		gauss = pcgrandom.NewGaussian(g)
	})
	return inst
}

// Seed reseeds the shared generator.
func Seed(s pcgrandom.Seed) error { return Default().Seed(s) }

// GetState snapshots the shared generator's state.
func GetState() pcgrandom.State { return Default().GetState() }

// SetState restores a snapshot taken with GetState.
func SetState(s pcgrandom.State) error { return Default().SetState(s) }

// Jumpahead advances (or rewinds) the shared generator by n steps.
func Jumpahead(n int64) { Default().Advance(n) }

// Word returns the next raw output word.
func Word() uint64 { return Default().Word() }

// Bits returns a uniform k-bit integer for 0 <= k <= 64.
func Bits(k int) (uint64, error) { return Default().Bits(k) }

// Below returns a uniform integer in [0, n).
func Below(n uint64) (uint64, error) { return Default().Below(n) }

// Float64 returns a uniform float in [0, 1).
func Float64() float64 { return Default().Float64() }

// RandInt returns a uniform integer in [a, b], endpoints included.
func RandInt(a, b int64) (int64, error) {
	return pcgrandom.RandInt(Default(), a, b)
}

// RandRange returns a uniform integer in [start, stop).
func RandRange(start, stop int64) (int64, error) {
	return pcgrandom.RandRange(Default(), start, stop)
}

// Choice returns a uniformly chosen element of seq.
func Choice[T any](seq []T) (T, error) {
	return pcgrandom.Choice(Default(), seq)
}

// Shuffle permutes x in place.
func Shuffle[T any](x []T) {
	pcgrandom.Shuffle(Default(), x)
}

// Sample returns k elements chosen without replacement.
func Sample[T any](population []T, k int) ([]T, error) {
	return pcgrandom.Sample(Default(), population, k)
}

// Choices returns k elements chosen with replacement, optionally
// weighted.
func Choices[T any](population []T, weights []float64, k int) ([]T, error) {
	return pcgrandom.Choices(Default(), population, weights, k)
}

// Uniform returns a float in [a, b).
func Uniform(a, b float64) float64 {
	return pcgrandom.Uniform(Default(), a, b)
}

// NormalVariate returns a normal draw with mean mu and standard
// deviation sigma.
func NormalVariate(mu, sigma float64) float64 {
	return pcgrandom.NormalVariate(Default(), mu, sigma)
}

// ExpoVariate returns an exponential draw with rate lambd.
func ExpoVariate(lambd float64) float64 {
	return pcgrandom.ExpoVariate(Default(), lambd)
}

// Gauss returns a normal draw via the shared polar-method cache.
func Gauss(mu, sigma float64) float64 {
	Default()
	return gauss.Next(mu, sigma)
}

// GammaVariate returns a gamma draw with shape alpha and scale beta.
func GammaVariate(alpha, beta float64) (float64, error) {
	return pcgrandom.GammaVariate(Default(), alpha, beta)
}

// BetaVariate returns a beta draw on [0, 1].
func BetaVariate(alpha, beta float64) (float64, error) {
	return pcgrandom.BetaVariate(Default(), alpha, beta)
}
