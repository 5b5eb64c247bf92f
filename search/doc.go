// Package search finds one route between two stations of a core.Map with one
// of four strategies and one of four preferences.
//
// What
//
//   - Strategies: DepthFirst, BreadthFirst, UniformCost, AStar.
//   - Preferences: Adjacency (hops), Time (seconds), Distance (velocity ×
//     time, transfers free), Transfers (line changes at the same stop).
//   - One driver serves every strategy. Each iteration:
//     1. stop if the frontier is empty (no route) or its head ends at the
//     destination (route found);
//     2. Expand the head into one child per outgoing connection;
//     3. RemoveCycles drops children that revisit a station;
//     4. ApplyCost (UniformCost, AStar) adds the step cost to G;
//     5. RemoveRedundant (AStar) drops paths dominated by a cheaper G to the
//     same station, in the new batch and in the pending frontier;
//     6. ApplyHeuristic (AStar) sets H;
//     7. the strategy inserts the children: prepend, append, sort by G, or
//     sort by (F, route).
//
// Determinism
//
//	Children follow core.Map.Connections order (insertion order). UniformCost
//	sorts stably by G; AStar sorts by F with a lexicographic route tie-break.
//	Repeating a search with the same inputs yields the same route and cost.
//
// Paths
//
//	A Path stores its route as a chain of hops shared with its ancestors, so
//	expanding a path costs one allocation per child regardless of depth.
//	Path.Route materializes the station sequence when needed.
//
// Optimality
//
//   - UniformCost is optimal for every preference.
//   - AStar is optimal for Time and Distance (admissible heuristics) on maps
//     whose connection times are consistent with station coordinates and
//     velocities. Adjacency and Transfers heuristics are weak tie-breakers.
//   - DepthFirst and BreadthFirst only guarantee a valid route.
//
// Usage
//
//	res, err := search.AStarSearch(m, origin, dest, search.WithPreference(search.Time))
//	if err != nil {
//		// ErrMapNil, ErrInvalidPreference, ErrOptionViolation,
//		// core.ErrStationNotFound, ErrMissingConnection or a context error.
//	}
//	if !res.Found {
//		// no route: not an error
//	}
//	fmt.Println(res.Path.Route(), res.Path.G)
//
// Options
//
//   - WithPreference(p)      cost/heuristic semantics (default Adjacency).
//   - WithContext(ctx)       cancellation, checked once per expansion.
//   - WithOnExpand(fn)       hook on every expanded frontier head.
//   - WithMaxExpansions(n)   stop after n expansions (Result.Truncated).
//
// Complexity (V = stations, E = connections)
//
//   - BreadthFirst/UniformCost: bounded by the number of simple paths explored
//     before the destination reaches the frontier head.
//   - AStar: the redundancy filter keeps only current-best entries per station.
//   - DepthFirst: can be exponential on maps with many simple cycles.
package search
