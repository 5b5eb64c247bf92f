// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMap(bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Station IDs are assigned densely in creation order: 0, 1, 2, ...
//   - Determinism: same options/seed and constructor order ⇒ identical maps.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metroroute/core"
)

// Constructor applies a deterministic mutation to m using the resolved
// builderConfig. Constructors MUST validate parameters early, return
// sentinel errors (no panics), and add stations only through addStation so
// IDs stay dense.
type Constructor func(m *core.Map, cfg builderConfig) error

// BuildMap creates a new core.Map, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildMap: %w" and returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewStations, ErrBadParameter, ErrConstructFailed or core sentinels.
func BuildMap(bopts []BuilderOption, cons ...Constructor) (*core.Map, error) {
	m := core.NewMap()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// addStation registers the next dense station id on line at p.
func addStation(m *core.Map, cfg builderConfig, line string, p orb.Point, idx int) (core.StationID, error) {
	id := core.StationID(m.StationCount())
	st := core.Station{
		ID:       id,
		Name:     cfg.nameFn(line, p, idx),
		Line:     line,
		Location: p,
		Velocity: cfg.velocityOf(line),
	}
	if err := m.AddStation(st); err != nil {
		return 0, err
	}

	return id, nil
}

// connect links from→to (and to→from unless one-way) with the given time.
func connect(m *core.Map, cfg builderConfig, from, to core.StationID, seconds float64) error {
	if cfg.oneWay {
		return m.AddConnection(from, to, seconds)
	}

	return m.AddLink(from, to, seconds)
}
