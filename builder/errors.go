// SPDX-License-Identifier: MIT
// Package: metroroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w at the call site.
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewStations indicates a count parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewStations = errors.New("builder: parameter too small")

// ErrBadParameter indicates a non-count parameter is out of domain
// (zero step, non-positive radius, negative time, ...).
var ErrBadParameter = errors.New("builder: bad parameter")

// ErrConstructFailed indicates the builder could not apply a constructor
// (e.g. a nil constructor was passed).
var ErrConstructFailed = errors.New("builder: construction failed")
