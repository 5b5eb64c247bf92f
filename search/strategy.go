package search

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/metroroute/core"
)

// Strategy selects the search algorithm. Each case fixes which steps of the
// shared driver run and how new paths enter the frontier:
//
//	strategy      cost  redundancy  heuristic  insertion
//	DepthFirst    -     -           -          prepend (stack)
//	BreadthFirst  -     -           -          append (queue)
//	UniformCost   yes   -           -          stable sort by G
//	AStar         yes   yes         yes        sort by (F, route)
type Strategy int

const (
	DepthFirst Strategy = iota
	BreadthFirst
	UniformCost
	AStar
)

var strategyNames = [...]string{
	DepthFirst:   "dfs",
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	AStar:        "astar",
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool { return s >= DepthFirst && s <= AStar }

func (s Strategy) String() string {
	if !s.Valid() {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}

	return strategyNames[s]
}

// ParseStrategy accepts "dfs", "bfs", "ucs" or "astar" (also "a*").
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "a*" {
		return AStar, nil
	}
	for i, n := range strategyNames {
		if name == n {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) costAware() bool { return s == UniformCost || s == AStar }

func (s Strategy) prunesRedundant() bool { return s == AStar }

func (s Strategy) informed() bool { return s == AStar }

// insert merges the new paths into the pending frontier according to s.
// frontier must not include the head that produced expanded.
func (s Strategy) insert(expanded, frontier []*Path) []*Path {
	switch s {
	case DepthFirst:
		out := make([]*Path, 0, len(expanded)+len(frontier))
		out = append(out, expanded...)
		return append(out, frontier...)
	case BreadthFirst:
		return append(frontier, expanded...)
	case UniformCost:
		out := append(frontier, expanded...)
		slices.SortStableFunc(out, func(a, b *Path) int { return cmp.Compare(a.G, b.G) })
		return out
	default:
		out := make([]*Path, 0, len(expanded)+len(frontier))
		out = append(out, expanded...)
		out = append(out, frontier...)
		sortByPriority(out)
		return out
	}
}

// sortByPriority orders paths by F, then lexicographically by route.
// Each route is materialized once per sort, not once per comparison.
func sortByPriority(paths []*Path) {
	type keyed struct {
		p     *Path
		f     float64
		route []core.StationID
	}
	keys := make([]keyed, len(paths))
	for i, p := range paths {
		keys[i] = keyed{p: p, f: p.F(), route: p.Route()}
	}
	slices.SortStableFunc(keys, func(a, b keyed) int {
		if c := cmp.Compare(a.f, b.f); c != 0 {
			return c
		}
		return slices.Compare(a.route, b.route)
	})
	for i := range keys {
		paths[i] = keys[i].p
	}
}
