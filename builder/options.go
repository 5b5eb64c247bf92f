// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the builder configuration before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the station naming function.
// Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic travel-time factors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a private RNG so stochastic factors are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTimeFactor sets the factor applied to geometric travel times.
// Panics on nil.
func WithTimeFactor(fn FactorFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTimeFactor(nil)")
	}
	return func(c *builderConfig) {
		c.factorFn = fn
	}
}

// WithVelocity sets the map-wide line velocity.
// Panics if v <= 0.
func WithVelocity(v float64) BuilderOption {
	if !(v > 0) {
		panic(fmt.Sprintf("builder: WithVelocity(%g): velocity must be > 0", v))
	}
	return func(c *builderConfig) {
		c.velocity = v
	}
}

// WithLineVelocity overrides the velocity of one line.
// Panics if v <= 0.
func WithLineVelocity(line string, v float64) BuilderOption {
	if !(v > 0) {
		panic(fmt.Sprintf("builder: WithLineVelocity(%q, %g): velocity must be > 0", line, v))
	}
	return func(c *builderConfig) {
		c.lineVelocity[line] = v
	}
}

// WithOneWay makes constructors add forward connections only.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) {
		c.oneWay = true
	}
}
