package core

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// noStationDistance is the starting minimum of the nearest-station scan.
var noStationDistance = math.Inf(1)

// NearestStations returns every station of m at minimum planar distance from
// p, sorted by ID ascending. Ties produce several ids. An empty map yields nil.
//
// Complexity: O(V log V) for the sorted enumeration.
func NearestStations(m *Map, p orb.Point) []StationID {
	best := noStationDistance
	var closest []StationID

	for _, s := range m.Stations() {
		d := planar.Distance(s.Location, p)
		switch {
		case d < best:
			best = d
			closest = []StationID{s.ID}
		case d == best:
			closest = append(closest, s.ID)
		}
	}

	return closest
}
