package search

import "github.com/katalvlaran/metroroute/core"

// Expand returns one child of p per outgoing connection of p.Last(), in the
// map's connection order. Children inherit p's G and H; p and m are not
// modified. A station without outgoing connections yields an empty slice.
func Expand(m *core.Map, p *Path) []*Path {
	conns := m.Connections(p.Last())
	children := make([]*Path, 0, len(conns))
	for _, c := range conns {
		children = append(children, p.extend(c.To))
	}

	return children
}

// RemoveCycles drops every path whose last station already appears earlier
// on its own route. Survivors keep their relative order.
//
// Only the newest station is checked: every input is one extension of an
// acyclic parent.
func RemoveCycles(paths []*Path) []*Path {
	out := make([]*Path, 0, len(paths))
	for _, p := range paths {
		if !p.revisits() {
			out = append(out, p)
		}
	}

	return out
}
