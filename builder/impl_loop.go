// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// impl_loop.go — implementation of Loop(name, n, center, radius).
//
// Contract:
//   • n ≥ 3 and radius > 0 (else ErrTooFewStations / ErrBadParameter).
//   • Stations sit on a circle, station i at angle 2π·i/n.
//   • Connections i→i+1 for i<n-1 plus the closing n-1→0, each timed by
//     cfg.travelTime over the chord length.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the id slice.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/metroroute/core"
)

const (
	methodLoop = "Loop"
	minLoopLen = 3
)

// Loop returns a Constructor that builds a circular line of n stations.
func Loop(name string, n int, center orb.Point, radius float64) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minLoopLen {
			return fmt.Errorf("%s(%q): n=%d (must be ≥ %d): %w", methodLoop, name, n, minLoopLen, ErrTooFewStations)
		}
		if !(radius > 0) {
			return fmt.Errorf("%s(%q): radius=%v: %w", methodLoop, name, radius, ErrBadParameter)
		}

		ids := make([]core.StationID, n)
		pts := make([]orb.Point, n)
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = orb.Point{center.X() + radius*math.Cos(theta), center.Y() + radius*math.Sin(theta)}
			id, err := addStation(m, cfg, name, pts[i], i)
			if err != nil {
				return fmt.Errorf("%s(%q): %w", methodLoop, name, err)
			}
			ids[i] = id
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			seconds := cfg.travelTime(name, planar.Distance(pts[i], pts[j]))
			if err := connect(m, cfg, ids[i], ids[j], seconds); err != nil {
				return fmt.Errorf("%s(%q): %w", methodLoop, name, err)
			}
		}

		return nil
	}
}
