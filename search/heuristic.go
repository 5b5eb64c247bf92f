package search

import (
	"fmt"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/metroroute/core"
)

// ApplyHeuristic sets H on every path as an estimate of the remaining cost
// from Last to dest under pref:
//
//	Adjacency  0 at the destination, else 1
//	Time       straight-line distance / fastest velocity in the map (admissible)
//	Distance   straight-line distance (admissible)
//	Transfers  0 when Last is on the destination's line, else 1
//
// A map whose fastest velocity is 0 gets H = 0 under Time.
// An unknown pref returns ErrInvalidPreference and leaves paths untouched.
func ApplyHeuristic(m *core.Map, paths []*Path, dest core.StationID, pref Preference) error {
	if !pref.Valid() {
		return fmt.Errorf("%w: heuristic model got %d", ErrInvalidPreference, int(pref))
	}
	if pref == Adjacency {
		for _, p := range paths {
			p.H = 0
			if p.Last() != dest {
				p.H = 1
			}
		}
		return nil
	}

	target, err := m.Station(dest)
	if err != nil {
		return err
	}
	maxVelocity := m.MaxVelocity()

	h := make([]float64, len(paths))
	for i, p := range paths {
		last, err := m.Station(p.Last())
		if err != nil {
			return err
		}
		switch pref {
		case Time:
			if maxVelocity > 0 {
				h[i] = planar.Distance(last.Location, target.Location) / maxVelocity
			}
		case Distance:
			h[i] = planar.Distance(last.Location, target.Location)
		case Transfers:
			if last.Line != target.Line {
				h[i] = 1
			}
		}
	}
	for i, p := range paths {
		p.H = h[i]
	}

	return nil
}
