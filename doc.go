// Package metroroute finds routes through a public transit network: stations
// grouped into lines, directed timed connections, and transfers between lines
// at shared stops.
//
// 🚀 What is metroroute?
//
//	A small, thread-safe route planner that brings together:
//		• Core primitives: stations, lines, timed connections, nearest-stop lookup
//		• One search engine, four strategies: DFS, BFS, Uniform Cost, A*
//		• Four preferences: fewest hops, fastest, shortest, fewest transfers
//		• Synthetic map builders for tests and demos
//		• YAML map files, an HTTP API and a CLI
//
// ✨ Why metroroute?
//
//   - Deterministic – same map, same query, same route and cost
//   - Explainable – OnExpand hook shows every frontier expansion
//   - Optimal where it matters – UCS always, A* for time and distance
//
// Layout:
//
//	core/            — Map, Station, Connection, NearestStations
//	search/          — Path, cost/heuristic models, redundancy filter, strategies
//	builder/         — Line, Chain, Loop, Grid, Interchanges, Isolated
//	mapfile/         — YAML Decode / Encode / Load
//	internal/config  — METROROUTE_* environment and .env
//	internal/server  — gin HTTP API, prometheus metrics, LRU result cache
//	cmd/metroroute   — serve | route | generate
//
// Quick ASCII example:
//
//	[A]──60s──[B]──120s──[C]
//
//	search.UniformCostSearch(m, A, C, search.WithPreference(search.Time))
//	→ A -> B -> C, g = 180
//
// See the examples/ directory for a runnable comparison of all strategies.
package metroroute
