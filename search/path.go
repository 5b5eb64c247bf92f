package search

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/metroroute/core"
)

// hop is one node of a route chain. Paths expanded from the same parent
// share every hop of the parent, so an expansion allocates one hop instead
// of copying the whole route.
type hop struct {
	station core.StationID
	parent  *hop
	depth   int
}

// Path is a partial route from the origin plus its cost bookkeeping.
//
// The route itself is immutable once built; G and H are written by the cost
// and heuristic models. F is always derived as G + H.
type Path struct {
	tail *hop

	// G is the accumulated cost under the active preference.
	G float64

	// H is the heuristic estimate of the remaining cost.
	H float64
}

// NewPath returns the single-station path starting at origin with G = H = 0.
func NewPath(origin core.StationID) *Path {
	return &Path{tail: &hop{station: origin, depth: 1}}
}

// extend returns a child path ending at s that inherits G and H.
func (p *Path) extend(s core.StationID) *Path {
	return &Path{
		tail: &hop{station: s, parent: p.tail, depth: p.tail.depth + 1},
		G:    p.G,
		H:    p.H,
	}
}

// F returns G + H.
func (p *Path) F() float64 { return p.G + p.H }

// Last returns the final station of the route.
func (p *Path) Last() core.StationID { return p.tail.station }

// Penultimate returns the station before Last, or false for a single-station path.
func (p *Path) Penultimate() (core.StationID, bool) {
	if p.tail.parent == nil {
		return 0, false
	}

	return p.tail.parent.station, true
}

// Len returns the number of stations on the route.
func (p *Path) Len() int { return p.tail.depth }

// Route returns the stations from origin to Last.
// Complexity: O(Len)
func (p *Path) Route() []core.StationID {
	route := make([]core.StationID, p.tail.depth)
	for h := p.tail; h != nil; h = h.parent {
		route[h.depth-1] = h.station
	}

	return route
}

// Contains reports whether id occurs on the prefix, i.e. the route without
// Last.
// Complexity: O(Len)
func (p *Path) Contains(id core.StationID) bool {
	for h := p.tail.parent; h != nil; h = h.parent {
		if h.station == id {
			return true
		}
	}

	return false
}

// revisits reports whether Last already occurs earlier on the route.
func (p *Path) revisits() bool { return p.Contains(p.tail.station) }

// String renders the route as "1 -> 2 -> 3".
func (p *Path) String() string {
	route := p.Route()
	parts := make([]string, len(route))
	for i, id := range route {
		parts[i] = strconv.Itoa(int(id))
	}

	return strings.Join(parts, " -> ")
}

// CompareRoutes orders a and b lexicographically by their station-id
// sequences; a strict prefix sorts first. It returns -1, 0 or +1.
func CompareRoutes(a, b *Path) int {
	return slices.Compare(a.Route(), b.Route())
}
