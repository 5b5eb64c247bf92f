// Package builder provides internal helper functions and types
// for configuring travel-time factors in map constructors.
package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/paulmach/orb"
)

// DefaultFactor is the travel-time factor used when no FactorFn is set:
// travel time equals distance / velocity.
const DefaultFactor float64 = 1

// FactorFn produces a multiplier applied to the geometric travel time of a
// connection. Factors are always >= 1, so connection times never undercut
// the straight-line time at line velocity.
type FactorFn func(rng *rand.Rand) float64

// DefaultFactorFn always returns DefaultFactor. Never panics.
func DefaultFactorFn(_ *rand.Rand) float64 {
	return DefaultFactor
}

// ConstantFactorFn returns a FactorFn that always yields value.
// Panics if value < 1.
func ConstantFactorFn(value float64) FactorFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantFactorFn: value must be ≥ 1, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformFactorFn returns a FactorFn sampling uniformly in [min, max).
// Panics if min < 1 or max < min.
// If rng is nil, yields DefaultFactor to keep the fallback deterministic.
func UniformFactorFn(min, max float64) FactorFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformFactorFn: require 1 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultFactor
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// LocationName names a station after its coordinates ("3,4"), so stations of
// different lines placed on the same point become the same physical stop.
func LocationName(_ string, p orb.Point, _ int) string {
	return strconv.FormatFloat(p.X(), 'g', -1, 64) + "," + strconv.FormatFloat(p.Y(), 'g', -1, 64)
}

// LineIndexName names a station "<line>-<idx>"; no two lines share a stop.
func LineIndexName(line string, _ orb.Point, idx int) string {
	return line + "-" + strconv.Itoa(idx)
}
