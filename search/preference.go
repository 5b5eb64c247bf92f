package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Preference selects the real-world quantity a search optimizes for.
// The numeric codes 0..3 are stable and accepted by ParsePreference.
type Preference int

const (
	// Adjacency counts hops.
	Adjacency Preference = iota
	// Time sums connection travel times in seconds.
	Time
	// Distance sums velocity × travel time, with free transfers.
	Distance
	// Transfers counts line changes at the same physical stop.
	Transfers
)

var preferenceNames = [...]string{
	Adjacency: "adjacency",
	Time:      "time",
	Distance:  "distance",
	Transfers: "transfers",
}

// Valid reports whether p is one of the four known preferences.
func (p Preference) Valid() bool {
	return p >= Adjacency && p <= Transfers
}

func (p Preference) String() string {
	if !p.Valid() {
		return "Preference(" + strconv.Itoa(int(p)) + ")"
	}

	return preferenceNames[p]
}

// ParsePreference accepts a name ("time") or a numeric code ("1").
func ParsePreference(s string) (Preference, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range preferenceNames {
		if s == name {
			return Preference(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Preference(n).Valid() {
		return Preference(n), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPreference, s)
}
