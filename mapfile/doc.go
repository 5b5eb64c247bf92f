// Package mapfile reads and writes core.Map networks as YAML documents.
//
// Format:
//
//	stations:
//	  - {id: 1, name: Catalunya, line: L1, x: 0, y: 0, velocity: 10}
//	  - {id: 2, name: Universitat, line: L1, x: 600, y: 0, velocity: 10}
//	  - {id: 3, name: Catalunya, line: L3, x: 0, y: 0, velocity: 12}
//	connections:
//	  - {from: 1, to: 2, time: 60}
//	  - {from: 2, to: 1, time: 60}
//	  - {from: 1, to: 3, time: 90}
//
// Connections are directed; list both directions for a two-way service.
// Stations sharing a name on different lines form one physical stop.
// Unknown keys are rejected.
//
// Errors:
//
//	ErrInvalidFile - the document is malformed or violates a core.Map
//	                 rule; the core sentinel (core.ErrDuplicateStation,
//	                 core.ErrStationNotFound, ...) is wrapped alongside it.
package mapfile
