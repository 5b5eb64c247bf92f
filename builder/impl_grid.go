// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// impl_grid.go — implementation of Grid(rows, cols, spacing).
//
// Canonical model:
//   • One horizontal line per row ("R0".."R{rows-1}") and one vertical line
//     per column ("C0".."C{cols-1}"), stations every spacing units.
//   • Station (r,c) of a row line sits at (c·spacing, r·spacing); the column
//     line has its own station on the same point.
//   • Every crossing becomes an interchange with DefaultTransferTime, as if
//     Interchanges(DefaultTransferTime) ran afterwards.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewStations); spacing > 0.
//   • Crossings are only recognized under a location-based name scheme.
//
// Determinism:
//   • IDs: all row lines first (row-major), then column lines (column-major).
//
// Complexity:
//   • Time: O(rows·cols) stations and connections.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metroroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 2
	rowLineFmt = "R%d"
	colLineFmt = "C%d"
)

// DefaultTransferTime is the interchange time Grid uses at crossings, in seconds.
const DefaultTransferTime = 30.0

// Grid returns a Constructor that builds a rows×cols network of crossing lines.
func Grid(rows, cols int, spacing float64) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewStations)
		}
		if !(spacing > 0) {
			return fmt.Errorf("%s: spacing=%v: %w", methodGrid, spacing, ErrBadParameter)
		}

		for r := 0; r < rows; r++ {
			line := fmt.Sprintf(rowLineFmt, r)
			start := orb.Point{0, float64(r) * spacing}
			if err := Line(line, cols, start, orb.Point{spacing, 0})(m, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodGrid, err)
			}
		}
		for c := 0; c < cols; c++ {
			line := fmt.Sprintf(colLineFmt, c)
			start := orb.Point{float64(c) * spacing, 0}
			if err := Line(line, rows, start, orb.Point{0, spacing})(m, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodGrid, err)
			}
		}

		if err := Interchanges(DefaultTransferTime)(m, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}

		return nil
	}
}
