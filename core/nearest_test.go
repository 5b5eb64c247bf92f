package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/core"
)

func TestNearestStations_SingleClosest(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, m.AddStation(core.Station{ID: 1, Location: orb.Point{0, 0}}))
	require.NoError(t, m.AddStation(core.Station{ID: 2, Location: orb.Point{10, 0}}))

	assert.Equal(t, []core.StationID{2}, core.NearestStations(m, orb.Point{8, 1}))
}

func TestNearestStations_TiesReturnAll(t *testing.T) {
	m := core.NewMap()
	// 1 and 3 share a location (a transfer stop), 2 is equidistant on the other side.
	require.NoError(t, m.AddStation(core.Station{ID: 3, Name: "X", Line: "L3", Location: orb.Point{0, 0}}))
	require.NoError(t, m.AddStation(core.Station{ID: 1, Name: "X", Line: "L1", Location: orb.Point{0, 0}}))
	require.NoError(t, m.AddStation(core.Station{ID: 2, Location: orb.Point{10, 0}}))
	require.NoError(t, m.AddStation(core.Station{ID: 4, Location: orb.Point{50, 0}}))

	assert.Equal(t, []core.StationID{1, 2, 3}, core.NearestStations(m, orb.Point{5, 0}))
}

func TestNearestStations_EmptyMap(t *testing.T) {
	assert.Nil(t, core.NearestStations(core.NewMap(), orb.Point{1, 1}))
}
