// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// impl_line.go — straight lines: Line(name, n, start, step) and
// Chain(name, start, step, times...).
//
// Contract:
//   • Line: n ≥ 2 stations at start + i·step; consecutive stations linked
//     with cfg.travelTime(name, |step|). step must be non-zero.
//   • Chain: len(times)+1 stations at the same positions; connection i uses
//     times[i] verbatim (no factor, no velocity).
//   • Both honor WithOneWay (forward connections only).
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.
//
// Determinism:
//   • Station IDs ascend along the line; connections are emitted in order.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/metroroute/core"
)

const (
	methodLine  = "Line"
	methodChain = "Chain"
	minLineLen  = 2
)

// Line returns a Constructor that lays out n evenly spaced stations of line
// name, starting at start and advancing by step.
func Line(name string, n int, start, step orb.Point) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minLineLen {
			return fmt.Errorf("%s(%q): n=%d (must be ≥ %d): %w", methodLine, name, n, minLineLen, ErrTooFewStations)
		}
		spacing := planar.Distance(orb.Point{}, step)
		if spacing == 0 {
			return fmt.Errorf("%s(%q): zero step: %w", methodLine, name, ErrBadParameter)
		}

		ids, err := layStations(m, cfg, name, n, start, step)
		if err != nil {
			return fmt.Errorf("%s(%q): %w", methodLine, name, err)
		}
		for i := 1; i < len(ids); i++ {
			if err = connect(m, cfg, ids[i-1], ids[i], cfg.travelTime(name, spacing)); err != nil {
				return fmt.Errorf("%s(%q): %w", methodLine, name, err)
			}
		}

		return nil
	}
}

// Chain returns a Constructor like Line whose connection times are given
// explicitly: times[i] is the travel time between station i and i+1.
func Chain(name string, start, step orb.Point, times ...float64) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if len(times) < minLineLen-1 {
			return fmt.Errorf("%s(%q): %d times (need ≥ %d): %w", methodChain, name, len(times), minLineLen-1, ErrTooFewStations)
		}
		for i, t := range times {
			if !(t >= 0) {
				return fmt.Errorf("%s(%q): times[%d]=%v: %w", methodChain, name, i, t, ErrBadParameter)
			}
		}

		ids, err := layStations(m, cfg, name, len(times)+1, start, step)
		if err != nil {
			return fmt.Errorf("%s(%q): %w", methodChain, name, err)
		}
		for i, t := range times {
			if err = connect(m, cfg, ids[i], ids[i+1], t); err != nil {
				return fmt.Errorf("%s(%q): %w", methodChain, name, err)
			}
		}

		return nil
	}
}

// layStations adds n stations of line at start + i·step and returns their ids.
func layStations(m *core.Map, cfg builderConfig, line string, n int, start, step orb.Point) ([]core.StationID, error) {
	ids := make([]core.StationID, n)
	for i := 0; i < n; i++ {
		p := orb.Point{start.X() + float64(i)*step.X(), start.Y() + float64(i)*step.Y()}
		id, err := addStation(m, cfg, line, p, i)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}
