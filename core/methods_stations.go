// File: methods_stations.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Stations() and StationIDs() return stations sorted by ID ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddStation registers s in the map.
//
// Steps:
//  1. Validate Velocity (ErrBadVelocity).
//  2. Under write lock, reject a reused ID (ErrDuplicateStation).
//  3. Store a copy of s and refresh the cached maximum velocity.
//
// Complexity: O(1) amortized.
func (m *Map) AddStation(s Station) error {
	if s.Velocity < 0 || math.IsNaN(s.Velocity) {
		return fmt.Errorf("%w: station %d velocity=%v", ErrBadVelocity, s.ID, s.Velocity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stations[s.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateStation, s.ID)
	}
	st := s
	m.stations[s.ID] = &st
	if s.Velocity > m.maxVelocity {
		m.maxVelocity = s.Velocity
	}

	return nil
}

// HasStation reports whether a station with the given id exists.
func (m *Map) HasStation(id StationID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.stations[id]

	return ok
}

// Station returns a copy of the station with the given id,
// or ErrStationNotFound.
func (m *Map) Station(id StationID) (Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stations[id]
	if !ok {
		return Station{}, fmt.Errorf("%w: %d", ErrStationNotFound, id)
	}

	return *s, nil
}

// Stations returns copies of all stations sorted by ID ascending.
// Complexity: O(V log V)
func (m *Map) Stations() []Station {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Station, 0, len(m.stations))
	for _, s := range m.stations {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// StationIDs returns every station id sorted ascending.
func (m *Map) StationIDs() []StationID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]StationID, 0, len(m.stations))
	for id := range m.stations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// StationCount returns the number of stations.
func (m *Map) StationCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.stations)
}

// MaxVelocity returns the highest station velocity in the network, or 0 for
// an empty map. It is maintained on AddStation, so the call is O(1).
func (m *Map) MaxVelocity() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.maxVelocity
}

// SameStop reports whether a and b are the same physical stop on different
// lines. Unknown ids are never the same stop.
func (m *Map) SameStop(a, b StationID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sa, okA := m.stations[a]
	sb, okB := m.stations[b]
	if !okA || !okB {
		return false
	}

	return sa.SameStop(*sb)
}
