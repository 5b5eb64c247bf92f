// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • nameFn       = LocationName   (stations at the same point share a name)
//   • rng          = nil            (pure/deterministic unless seeded)
//   • factorFn     = DefaultFactorFn (travel time == geometric time)
//   • velocity     = DefaultVelocity
//   • oneWay       = false          (every connection is mirrored)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// DefaultVelocity is the line velocity used when none is configured,
// in distance units per second.
const DefaultVelocity = 10.0

// NameFn names a station from its line, location and index on the line.
type NameFn func(line string, p orb.Point, idx int) string

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	nameFn   NameFn
	rng      *rand.Rand
	factorFn FactorFn

	velocity     float64
	lineVelocity map[string]float64

	oneWay bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:       LocationName,
		factorFn:     DefaultFactorFn,
		velocity:     DefaultVelocity,
		lineVelocity: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// velocityOf returns the velocity configured for line, falling back to the
// map-wide velocity.
func (c builderConfig) velocityOf(line string) float64 {
	if v, ok := c.lineVelocity[line]; ok {
		return v
	}

	return c.velocity
}

// travelTime converts a geometric distance on line into seconds, scaled by
// one draw of the factor function (always >= 1).
func (c builderConfig) travelTime(line string, distance float64) float64 {
	return distance / c.velocityOf(line) * c.factorFn(c.rng)
}
