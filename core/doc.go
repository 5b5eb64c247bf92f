// Package core provides a thread-safe in-memory transit Map: stations with
// planar coordinates, a line, a name and a velocity, plus directed
// connections weighted by travel time in seconds.
//
// The Map is the read-only graph model every search in package search runs
// against:
//
//   - Stations carry an orb.Point location, the Line they belong to and the
//     Name of the physical stop. Two stations with the same Name on different
//     Lines model a transfer.
//   - Connections(id) returns outgoing connections in insertion order. That
//     order is the base expansion order of every search algorithm, so building
//     a map the same way always yields the same routes.
//   - MaxVelocity() is maintained incrementally, so admissible time
//     heuristics can query it on every expansion.
//
// Building a map:
//
//	m := core.NewMap()
//	_ = m.AddStation(core.Station{ID: 1, Name: "Catalunya", Line: "L1", Location: orb.Point{0, 0}, Velocity: 10})
//	_ = m.AddStation(core.Station{ID: 2, Name: "Urquinaona", Line: "L1", Location: orb.Point{600, 0}, Velocity: 10})
//	_ = m.AddLink(1, 2, 60) // both directions, 60 seconds
//
// Coordinate lookup:
//
//	ids := core.NearestStations(m, orb.Point{250, 10}) // every station at minimum distance
//
// Errors:
//
//   - ErrStationNotFound   unknown station id.
//   - ErrDuplicateStation  station id registered twice.
//   - ErrLoopNotAllowed    connection from a station to itself.
//   - ErrBadTravelTime     negative or NaN travel time.
//   - ErrBadVelocity       negative or NaN velocity.
//
// Concurrency:
//
//	A single sync.RWMutex guards the map. Searches only read, so any number
//	of searches may run concurrently over one Map.
package core
