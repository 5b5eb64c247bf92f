package search

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// ApplyCost adds to each path's inherited G the cost of its last step
// (Penultimate→Last) under pref:
//
//	Adjacency  1 per connection
//	Time       travel time of the connection
//	Distance   velocity(Last) × travel time, 0 velocity on a same-stop transfer
//	Transfers  1 on a same-stop transfer, else 0
//
// Single-station paths have no last step and are left unchanged.
// An unknown pref returns ErrInvalidPreference; a missing station or
// connection returns the lookup error. On any error no path is modified.
func ApplyCost(m *core.Map, paths []*Path, pref Preference) error {
	if !pref.Valid() {
		return fmt.Errorf("%w: cost model got %d", ErrInvalidPreference, int(pref))
	}

	// Increments are computed first and applied only once all succeeded.
	inc := make([]float64, len(paths))
	for i, p := range paths {
		pen, ok := p.Penultimate()
		if !ok {
			continue
		}
		c, err := stepCost(m, pen, p.Last(), pref)
		if err != nil {
			return err
		}
		inc[i] = c
	}
	for i, p := range paths {
		p.G += inc[i]
	}

	return nil
}

// stepCost returns the cost of moving from→to under a valid pref.
func stepCost(m *core.Map, from, to core.StationID, pref Preference) (float64, error) {
	if pref == Adjacency {
		return 1, nil
	}

	seconds, ok := m.TravelTime(from, to)
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrMissingConnection, from, to)
	}
	if pref == Time {
		return seconds, nil
	}

	src, err := m.Station(from)
	if err != nil {
		return 0, err
	}
	dst, err := m.Station(to)
	if err != nil {
		return 0, err
	}
	transfer := src.SameStop(dst)

	if pref == Distance {
		if transfer {
			return 0, nil
		}
		return dst.Velocity * seconds, nil
	}

	// Transfers
	if transfer {
		return 1, nil
	}

	return 0, nil
}
