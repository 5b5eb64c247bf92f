// Package builder provides reusable “functional‐options”‐style constructors
// for synthetic transit networks. It lives alongside core and search to give
// tests, benchmarks and examples deterministic maps with known geometry.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMap(opts, cons...): creates a core.Map and applies constructors in order.
//     – Constructor:            a deterministic mutation of the map.
//   - Constructors:
//     – Line(name, n, start, step):        n evenly spaced stations.
//     – Chain(name, start, step, times...): like Line with explicit travel times.
//     – Loop(name, n, center, radius):     circular line closing on itself.
//     – Grid(rows, cols, spacing):         crossing row/column lines with interchanges.
//     – Interchanges(seconds):             links stations forming the same stop.
//     – Isolated(line, at):                a single unconnected station.
//   - Configuration (BuilderOption):
//     – WithVelocity, WithLineVelocity:    line speeds (distance units / second).
//     – WithTimeFactor(FactorFn):          travel time = distance / velocity × factor.
//     – WithSeed, WithRand:                RNG for stochastic factors.
//     – WithNameScheme(NameFn):            LocationName (default) or LineIndexName.
//     – WithOneWay:                        forward connections only.
//
// Guarantees:
//
//   - Station IDs are dense and follow constructor order (0, 1, 2, ...).
//   - Geometric consistency: with the default factor (or any factor ≥ 1) no
//     connection is faster than the straight line at the map's fastest
//     velocity, so search heuristics based on distance stay admissible.
//     Chain times are taken verbatim and carry no such guarantee.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     constructors themselves only return wrapped sentinel errors.
//
// Example:
//
//	m, err := builder.BuildMap(
//		[]builder.BuilderOption{builder.WithVelocity(15)},
//		builder.Line("red", 5, orb.Point{0, 0}, orb.Point{100, 0}),
//		builder.Line("blue", 3, orb.Point{200, -100}, orb.Point{0, 100}),
//		builder.Interchanges(45),
//	)
package builder
