package search

import "github.com/katalvlaran/metroroute/core"

// VisitedCosts maps a station to the lowest G at which any accepted path has
// reached it. Entries are only ever added or lowered.
type VisitedCosts map[core.StationID]float64

// RemoveRedundant prunes dominated paths for A*.
//
// A freshly expanded path is kept only if its station is unseen or its G is
// strictly lower than the recorded best; a kept path records its G at once,
// so within one batch an earlier path wins a tie against a later one.
// Frontier entries then survive only if their G is <= the recorded best for
// their station.
//
// Note the asymmetry (< to accept, <= to survive): on a tie the pending
// entry stays and the newcomer is dropped.
//
// visited is updated in place. Both returned slices are freshly allocated.
func RemoveRedundant(expanded, frontier []*Path, visited VisitedCosts) ([]*Path, []*Path) {
	kept := make([]*Path, 0, len(expanded))
	for _, p := range expanded {
		best, seen := visited[p.Last()]
		if seen && p.G >= best {
			continue
		}
		visited[p.Last()] = p.G
		kept = append(kept, p)
	}

	survivors := make([]*Path, 0, len(frontier))
	for _, p := range frontier {
		if best, seen := visited[p.Last()]; seen && p.G > best {
			continue
		}
		survivors = append(survivors, p)
	}

	return kept, survivors
}
