// Package search defines options, results and error definitions for route
// search over a core.Map.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrMapNil is returned if a nil map pointer is passed.
	ErrMapNil = errors.New("search: map is nil")

	// ErrInvalidPreference is the configuration error raised for a preference
	// code outside Adjacency..Transfers.
	ErrInvalidPreference = errors.New("search: invalid preference")

	// ErrUnknownStrategy is returned for a Strategy outside DepthFirst..AStar.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrMissingConnection is returned when a path steps over a pair of
	// stations the map has no connection for. It signals a malformed map.
	ErrMissingConnection = errors.New("search: missing connection")
)

// Option configures a search via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Preference selects the cost and heuristic semantics.
	// Ignored by DepthFirst and BreadthFirst, but still validated.
	Preference Preference

	// OnExpand is called with the frontier head right before it is expanded.
	OnExpand func(p *Path)

	// MaxExpansions, if > 0, stops the search after that many expansions.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Adjacency preference
//   - no-op OnExpand hook
//   - no expansion limit
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Preference:    Adjacency,
		OnExpand:      func(*Path) {},
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPreference selects what the search optimizes for.
func WithPreference(p Preference) Option {
	return func(o *Options) {
		o.Preference = p
	}
}

// WithOnExpand registers a callback invoked for every expanded path.
func WithOnExpand(fn func(p *Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop after n expansions (Result.Truncated is set)
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a search.
//   - Found: whether a route to the destination was discovered.
//   - Path: the discovered route (nil when Found is false). Path.G is the
//     cost under the active preference for cost-aware strategies.
//   - Expansions: how many frontier heads were expanded.
//   - Truncated: the search stopped on MaxExpansions, not on an empty frontier.
type Result struct {
	Path       *Path
	Found      bool
	Expansions int
	Truncated  bool
}
