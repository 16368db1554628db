// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"sort"

	"github.com/pkg/errors"
)

// below draws from src with a bound that is known to be positive.
func below(src UniformSource, n uint64) uint64 {
	v, err := src.Below(n)
	if err != nil {
		panic(err)
	}
	return v
}

// RandRange returns a uniform integer in [start, stop).
func RandRange(src UniformSource, start, stop int64) (int64, error) {
	if stop <= start {
		return 0, errors.Wrapf(ErrRange,
			"empty range for RandRange(%d, %d)", start, stop)
	}
	// subtract in uint64: the width of a valid int64 range can reach
	// 2^64 - 1, which int64 subtraction would wrap negative
	width := uint64(stop) - uint64(start)
	return start + int64(below(src, width)), nil
}

// RandRangeStep returns a uniform element of the arithmetic progression
// start, start+step, ... bounded by stop (exclusive). step may be
// negative; it may not be zero.
func RandRangeStep(src UniformSource, start, stop, step int64) (int64, error) {
	if step == 0 {
		return 0, errors.Wrap(ErrRange, "zero step for RandRangeStep")
	}
	n := -floorDiv(-(stop - start), step)
	if n <= 0 {
		return 0, errors.Wrapf(ErrRange,
			"empty range for RandRangeStep(%d, %d, %d)", start, stop, step)
	}
	return start + step*int64(below(src, uint64(n))), nil
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// RandInt returns a uniform integer in [a, b], both endpoints included.
func RandInt(src UniformSource, a, b int64) (int64, error) {
	if b < a {
		return 0, errors.Wrapf(ErrRange,
			"empty range for RandInt(%d, %d)", a, b)
	}
	span := uint64(b) - uint64(a)
	if span == ^uint64(0) {
		// [MinInt64, MaxInt64]: all 2^64 values, beyond Below's bound
		v, err := src.Bits(64)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	}
	return a + int64(below(src, span+1)), nil
}

// Choice returns a uniformly chosen element of a non-empty slice.
func Choice[T any](src UniformSource, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, errors.Wrap(ErrRange,
			"cannot choose from an empty sequence")
	}
	return seq[below(src, uint64(len(seq)))], nil
}

// Shuffle permutes x in place with a Fisher-Yates pass from the top,
// consuming exactly len(x) draws.
func Shuffle[T any](src UniformSource, x []T) {
	n := len(x)
	for i := n - 1; i >= 0; i-- {
		j := i + int(below(src, uint64(n-i)))
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}
}

// Sample returns k elements chosen without replacement from the
// population, in selection order, leaving the population unchanged.
//
// Uses the algorithm attributed to Robert Floyd ("More Programming
// Pearls", Bentley), which consumes exactly k draws.
func Sample[T any](src UniformSource, population []T, k int) ([]T, error) {
	n := len(population)
	if k < 0 || k > n {
		return nil, errors.Wrapf(ErrRange,
			"sample of %d from a population of %d", k, n)
	}
	d := make(map[int]int, k)
	for i := k - 1; i >= 0; i-- {
		j := i + int(below(src, uint64(n-i)))
		if v, ok := d[j]; ok {
			d[i] = v
		}
		d[j] = i
	}
	result := make([]T, k)
	for j, i := range d {
		result[i] = population[j]
	}
	return result, nil
}

// Choices returns k elements chosen with replacement. A nil weights
// slice selects uniformly; otherwise weights are relative and must sum
// to a strictly positive total.
func Choices[T any](src UniformSource, population []T, weights []float64, k int) ([]T, error) {
	if weights == nil {
		n := len(population)
		if n == 0 {
			return nil, errors.Wrap(ErrRange,
				"cannot choose from an empty population")
		}
		result := make([]T, k)
		for i := range result {
			result[i] = population[below(src, uint64(n))]
		}
		return result, nil
	}
	cum := make([]float64, len(weights))
	acc := 0.0
	for i, w := range weights {
		acc += w
		cum[i] = acc
	}
	return ChoicesCum(src, population, cum, k)
}

// ChoicesCum is Choices with precomputed cumulative weights.
func ChoicesCum[T any](src UniformSource, population []T, cumWeights []float64, k int) ([]T, error) {
	if len(population) == 0 {
		return nil, errors.Wrap(ErrRange,
			"cannot choose from an empty population")
	}
	if len(cumWeights) != len(population) {
		return nil, errors.Wrapf(ErrRange,
			"%d weights for a population of %d",
			len(cumWeights), len(population))
	}
	total := cumWeights[len(cumWeights)-1]
	if total <= 0 {
		return nil, errors.Wrap(ErrRange,
			"total weight must be strictly positive")
	}

	// Normalizing to [0, 1] keeps the bisection index in range: the
	// uniform draw is strictly below 1 and the last bisector is
	// exactly 1, dodging the double-rounding overrun of a direct
	// total*random() scale.
	bisectors := make([]float64, len(cumWeights))
	for i, w := range cumWeights {
		bisectors[i] = w / total
	}
	result := make([]T, k)
	for i := range result {
		u := src.Float64()
		result[i] = population[sort.Search(len(bisectors), func(j int) bool {
			return bisectors[j] > u
		})]
	}
	return result, nil
}
