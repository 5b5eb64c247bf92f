package search

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// runner holds the mutable state of a single search execution.
type runner struct {
	m        *core.Map
	strategy Strategy
	opts     Options
	dest     core.StationID
	frontier []*Path
	visited  VisitedCosts // A* only
	res      *Result
}

// Search runs strategy from origin to dest over m and returns the first path
// whose last station is dest, or a Result with Found == false when the
// frontier empties.
//
// Validation (in order):
//  1. m must be non-nil (ErrMapNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. Preference must be known (ErrInvalidPreference), for every strategy.
//  4. strategy must be known (ErrUnknownStrategy).
//  5. origin and dest must exist (core.ErrStationNotFound).
//
// An unreachable destination is not an error. Any other error comes from a
// malformed map (ErrMissingConnection, core.ErrStationNotFound) or from the
// context.
//
// Complexity: DepthFirst may enumerate exponentially many simple paths on
// maps with many cycles; AStar keeps at most one frontier entry per station
// cost level thanks to the redundancy filter.
func Search(m *core.Map, origin, dest core.StationID, strategy Strategy, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMapNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.Preference.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPreference, int(o.Preference))
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if !m.HasStation(origin) {
		return nil, fmt.Errorf("search: origin %d: %w", origin, core.ErrStationNotFound)
	}
	if !m.HasStation(dest) {
		return nil, fmt.Errorf("search: destination %d: %w", dest, core.ErrStationNotFound)
	}

	r := &runner{
		m:        m,
		strategy: strategy,
		opts:     o,
		dest:     dest,
		frontier: []*Path{NewPath(origin)},
		res:      &Result{},
	}
	if strategy.prunesRedundant() {
		r.visited = make(VisitedCosts)
	}
	if err := r.loop(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// loop expands the frontier head until it reaches dest, the frontier
// empties, the expansion cap is hit, or the context is done.
func (r *runner) loop() error {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		if len(r.frontier) == 0 {
			return nil
		}
		head := r.frontier[0]
		if head.Last() == r.dest {
			r.res.Path = head
			r.res.Found = true
			return nil
		}
		if r.opts.MaxExpansions > 0 && r.res.Expansions >= r.opts.MaxExpansions {
			r.res.Truncated = true
			return nil
		}

		if err := r.step(head); err != nil {
			return err
		}
	}
}

// step expands head and rebuilds the frontier without it.
func (r *runner) step(head *Path) error {
	r.opts.OnExpand(head)
	r.res.Expansions++

	expanded := RemoveCycles(Expand(r.m, head))
	rest := r.frontier[1:]

	if r.strategy.costAware() {
		if err := ApplyCost(r.m, expanded, r.opts.Preference); err != nil {
			return err
		}
	}
	if r.strategy.prunesRedundant() {
		expanded, rest = RemoveRedundant(expanded, rest, r.visited)
	}
	if r.strategy.informed() {
		if err := ApplyHeuristic(r.m, expanded, r.dest, r.opts.Preference); err != nil {
			return err
		}
	}

	r.frontier = r.strategy.insert(expanded, rest)

	return nil
}

// DepthFirstSearch explores the most recently expanded path first.
// It ignores costs; the returned Path has G == 0.
func DepthFirstSearch(m *core.Map, origin, dest core.StationID, opts ...Option) (*Result, error) {
	return Search(m, origin, dest, DepthFirst, opts...)
}

// BreadthFirstSearch explores paths in order of hop count.
// It ignores costs; the returned Path has G == 0.
func BreadthFirstSearch(m *core.Map, origin, dest core.StationID, opts ...Option) (*Result, error) {
	return Search(m, origin, dest, BreadthFirst, opts...)
}

// UniformCostSearch always expands the cheapest pending path; the result is
// optimal under the chosen preference.
func UniformCostSearch(m *core.Map, origin, dest core.StationID, opts ...Option) (*Result, error) {
	return Search(m, origin, dest, UniformCost, opts...)
}

// AStarSearch expands by G + H with redundant-path pruning. With the Time or
// Distance preference the heuristic is admissible and the result optimal.
func AStarSearch(m *core.Map, origin, dest core.StationID, opts ...Option) (*Result, error) {
	return Search(m, origin, dest, AStar, opts...)
}
