// File: methods_connections.go
// Role: Connection lifecycle & queries: AddConnection/AddLink/Connections/TravelTime.
//
// Determinism:
//   - Connections(id) returns outgoing connections in insertion order.
//   - Re-adding an existing (from,to) pair updates the time in place and keeps
//     its original position.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"math"
)

// AddConnection adds the directed connection from→to taking seconds.
//
// Steps:
//  1. Validate time (ErrBadTravelTime) and loop (ErrLoopNotAllowed).
//  2. Under write lock, validate both endpoints exist (ErrStationNotFound).
//  3. Update in place when from→to exists, append otherwise.
//
// Complexity: O(1) amortized.
func (m *Map) AddConnection(from, to StationID, seconds float64) error {
	if seconds < 0 || math.IsNaN(seconds) {
		return fmt.Errorf("%w: %d→%d time=%v", ErrBadTravelTime, from, to, seconds)
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stations[from]; !ok {
		return fmt.Errorf("%w: connection source %d", ErrStationNotFound, from)
	}
	if _, ok := m.stations[to]; !ok {
		return fmt.Errorf("%w: connection target %d", ErrStationNotFound, to)
	}

	idx, ok := m.position[from]
	if !ok {
		idx = make(map[StationID]int)
		m.position[from] = idx
	}
	if i, exists := idx[to]; exists {
		m.adjacency[from][i].Time = seconds
		return nil
	}
	idx[to] = len(m.adjacency[from])
	m.adjacency[from] = append(m.adjacency[from], Connection{To: to, Time: seconds})
	m.connections++

	return nil
}

// AddLink adds a→b and b→a with the same travel time.
func (m *Map) AddLink(a, b StationID, seconds float64) error {
	if err := m.AddConnection(a, b, seconds); err != nil {
		return err
	}

	return m.AddConnection(b, a, seconds)
}

// Connections returns a copy of the outgoing connections of id in insertion
// order. A station without outgoing connections, or an unknown id, yields an
// empty slice.
// Complexity: O(d)
func (m *Map) Connections(id StationID) []Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()

	adj := m.adjacency[id]
	out := make([]Connection, len(adj))
	copy(out, adj)

	return out
}

// TravelTime returns the time of the connection from→to and whether it exists.
func (m *Map) TravelTime(from, to StationID) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.position[from][to]
	if !ok {
		return 0, false
	}

	return m.adjacency[from][i].Time, true
}

// HasConnection reports whether from→to exists.
func (m *Map) HasConnection(from, to StationID) bool {
	_, ok := m.TravelTime(from, to)

	return ok
}

// ConnectionCount returns the number of directed connections.
func (m *Map) ConnectionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.connections
}
