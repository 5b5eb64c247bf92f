// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// impl_interchange.go — Interchanges(seconds) and Isolated(name, at).
//
// Interchanges contract:
//   • Scans every station already in the map; stations sharing a Name but on
//     different Lines are the same physical stop.
//   • Each such pair is linked in both directions with the given time,
//     regardless of WithOneWay. Re-running updates times in place.
//   • seconds must be ≥ 0 (else ErrBadParameter).
//
// Complexity:
//   • Time: O(S + Σ k²) where k is the number of lines at a stop.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metroroute/core"
)

const (
	methodInterchanges = "Interchanges"
	methodIsolated     = "Isolated"
)

// Interchanges returns a Constructor that links every pair of stations that
// form the same physical stop.
func Interchanges(seconds float64) Constructor {
	return func(m *core.Map, _ builderConfig) error {
		if !(seconds >= 0) {
			return fmt.Errorf("%s: seconds=%v: %w", methodInterchanges, seconds, ErrBadParameter)
		}

		byName := make(map[string][]core.Station)
		var order []string
		for _, st := range m.Stations() {
			if _, ok := byName[st.Name]; !ok {
				order = append(order, st.Name)
			}
			byName[st.Name] = append(byName[st.Name], st)
		}

		for _, name := range order {
			group := byName[name]
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					if !group[i].SameStop(group[j]) {
						continue
					}
					if err := m.AddLink(group[i].ID, group[j].ID, seconds); err != nil {
						return fmt.Errorf("%s: %w", methodInterchanges, err)
					}
				}
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds a single unconnected station.
func Isolated(line string, at orb.Point) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if _, err := addStation(m, cfg, line, at, 0); err != nil {
			return fmt.Errorf("%s(%q): %w", methodIsolated, line, err)
		}

		return nil
	}
}
