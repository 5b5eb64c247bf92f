package core_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/metroroute/core"
)

type MapSuite struct {
	suite.Suite
	m *core.Map
}

func (s *MapSuite) SetupTest() {
	s.m = core.NewMap()
	for _, st := range []core.Station{
		{ID: 1, Name: "Catalunya", Line: "L1", Location: orb.Point{0, 0}, Velocity: 10},
		{ID: 2, Name: "Universitat", Line: "L1", Location: orb.Point{600, 0}, Velocity: 10},
		{ID: 3, Name: "Catalunya", Line: "L3", Location: orb.Point{0, 5}, Velocity: 12},
	} {
		s.Require().NoError(s.m.AddStation(st))
	}
}

func (s *MapSuite) TestAddStationAndLookup() {
	require := require.New(s.T())

	require.True(s.m.HasStation(1))
	require.False(s.m.HasStation(99))
	require.Equal(3, s.m.StationCount())

	st, err := s.m.Station(2)
	require.NoError(err)
	require.Equal("Universitat", st.Name)

	_, err = s.m.Station(99)
	require.ErrorIs(err, core.ErrStationNotFound)
}

func (s *MapSuite) TestAddStationRejectsDuplicateAndBadVelocity() {
	require := require.New(s.T())

	err := s.m.AddStation(core.Station{ID: 1, Name: "again"})
	require.ErrorIs(err, core.ErrDuplicateStation)

	err = s.m.AddStation(core.Station{ID: 10, Velocity: -1})
	require.ErrorIs(err, core.ErrBadVelocity)

	err = s.m.AddStation(core.Station{ID: 11, Velocity: math.NaN()})
	require.ErrorIs(err, core.ErrBadVelocity)
}

func (s *MapSuite) TestStationsSortedByID() {
	require := require.New(s.T())
	require.NoError(s.m.AddStation(core.Station{ID: 0, Name: "Zero"}))

	ids := s.m.StationIDs()
	require.Equal([]core.StationID{0, 1, 2, 3}, ids)

	stations := s.m.Stations()
	require.Len(stations, 4)
	require.Equal(core.StationID(0), stations[0].ID)
}

func (s *MapSuite) TestConnectionsKeepInsertionOrder() {
	require := require.New(s.T())
	require.NoError(s.m.AddConnection(1, 3, 30))
	require.NoError(s.m.AddConnection(1, 2, 60))

	conns := s.m.Connections(1)
	require.Equal([]core.Connection{{To: 3, Time: 30}, {To: 2, Time: 60}}, conns)

	// Updating keeps the original slot.
	require.NoError(s.m.AddConnection(1, 3, 45))
	conns = s.m.Connections(1)
	require.Equal([]core.Connection{{To: 3, Time: 45}, {To: 2, Time: 60}}, conns)
	require.Equal(2, s.m.ConnectionCount())
}

func (s *MapSuite) TestConnectionsReturnsCopy() {
	require := require.New(s.T())
	require.NoError(s.m.AddConnection(1, 2, 60))

	conns := s.m.Connections(1)
	conns[0].Time = 1

	tt, ok := s.m.TravelTime(1, 2)
	require.True(ok)
	require.Equal(60.0, tt)
}

func (s *MapSuite) TestAddConnectionValidation() {
	require := require.New(s.T())

	require.ErrorIs(s.m.AddConnection(1, 1, 10), core.ErrLoopNotAllowed)
	require.ErrorIs(s.m.AddConnection(1, 2, -1), core.ErrBadTravelTime)
	require.ErrorIs(s.m.AddConnection(1, 99, 10), core.ErrStationNotFound)
	require.ErrorIs(s.m.AddConnection(99, 1, 10), core.ErrStationNotFound)
	require.Equal(0, s.m.ConnectionCount())
}

func (s *MapSuite) TestAddLinkIsSymmetric() {
	require := require.New(s.T())
	require.NoError(s.m.AddLink(1, 2, 60))

	require.True(s.m.HasConnection(1, 2))
	require.True(s.m.HasConnection(2, 1))
	require.False(s.m.HasConnection(1, 3))
	require.Equal(2, s.m.ConnectionCount())
}

func (s *MapSuite) TestConnectionsOfIsolatedStation() {
	require := require.New(s.T())
	require.Empty(s.m.Connections(2))
	require.Empty(s.m.Connections(42))
}

func (s *MapSuite) TestSameStopAndMaxVelocity() {
	require := require.New(s.T())

	require.True(s.m.SameStop(1, 3))
	require.False(s.m.SameStop(1, 2))
	require.False(s.m.SameStop(1, 1), "same line is not a transfer")
	require.False(s.m.SameStop(1, 99))

	require.Equal(12.0, s.m.MaxVelocity())
	require.NoError(s.m.AddStation(core.Station{ID: 4, Name: "Fast", Line: "L9", Velocity: 30}))
	require.Equal(30.0, s.m.MaxVelocity())
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}

func TestNewMapIsEmpty(t *testing.T) {
	m := core.NewMap()
	require.Equal(t, 0, m.StationCount())
	require.Equal(t, 0, m.ConnectionCount())
	require.Equal(t, 0.0, m.MaxVelocity())
	require.Empty(t, m.Stations())
}
