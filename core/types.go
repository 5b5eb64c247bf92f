// Package core defines the transit Map, its Station and Connection types,
// and thread-safe primitives for building and querying a station network.
//
// This file declares StationID, Station, Connection, Map, the sentinel
// errors and the NewMap constructor.
//
// Errors:
//
//	ErrStationNotFound   - requested station does not exist.
//	ErrDuplicateStation  - a station id was registered twice.
//	ErrLoopNotAllowed    - connection from a station to itself.
//	ErrBadTravelTime     - negative or NaN travel time.
//	ErrBadVelocity       - negative or NaN station velocity.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core map operations.
var (
	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrDuplicateStation indicates AddStation was called with an id already in use.
	ErrDuplicateStation = errors.New("core: duplicate station id")

	// ErrLoopNotAllowed indicates a connection from a station to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop connection not allowed")

	// ErrBadTravelTime indicates a negative or NaN travel time.
	ErrBadTravelTime = errors.New("core: bad travel time")

	// ErrBadVelocity indicates a negative or NaN station velocity.
	ErrBadVelocity = errors.New("core: bad station velocity")
)

// StationID uniquely identifies a Station within its Map.
type StationID int

// Station is one stop of one line.
//
// Two stations with the same Name on different Lines are the same physical
// stop; moving between them is a transfer.
type Station struct {
	// ID is the unique identifier of this Station.
	ID StationID

	// Name of the physical stop. Shared by every line serving it.
	Name string

	// Line is the route/service this station belongs to.
	Line string

	// Location is the planar (x, y) position of the station.
	Location orb.Point

	// Velocity is the line speed at this station, in distance units per second.
	Velocity float64
}

// SameStop reports whether s and o are the same physical stop on different lines.
func (s Station) SameStop(o Station) bool {
	return s.Name == o.Name && s.Line != o.Line
}

// Connection is a directed edge to another station weighted by travel time.
type Connection struct {
	// To is the destination station.
	To StationID

	// Time is the travel time in seconds.
	Time float64
}

// Map is the in-memory transit network.
//
// Connections are kept per origin station in insertion order: this order is
// the iteration order every search relies on for reproducible results.
// mu guards every field; all methods are safe for concurrent use.
type Map struct {
	mu sync.RWMutex

	stations map[StationID]*Station

	// adjacency[from] lists outgoing connections in insertion order;
	// position[from][to] is the index of to inside adjacency[from].
	adjacency map[StationID][]Connection
	position  map[StationID]map[StationID]int

	connections int
	maxVelocity float64
}

// NewMap creates an empty Map.
// Complexity: O(1)
func NewMap() *Map {
	return &Map{
		stations:  make(map[StationID]*Station),
		adjacency: make(map[StationID][]Connection),
		position:  make(map[StationID]map[StationID]int),
	}
}
