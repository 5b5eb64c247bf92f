package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/internal/config"
	"github.com/katalvlaran/metroroute/internal/server"
	"github.com/katalvlaran/metroroute/mapfile"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type routeBody struct {
	Algorithm  string `json:"algorithm"`
	Preference string `json:"preference"`
	Route      []struct {
		ID   core.StationID `json:"id"`
		Name string         `json:"name"`
		Line string         `json:"line"`
	} `json:"route"`
	Cost       float64 `json:"cost"`
	Transfers  int     `json:"transfers"`
	Expansions int     `json:"expansions"`
}

func (b routeBody) ids() []core.StationID {
	out := make([]core.StationID, len(b.Route))
	for i, s := range b.Route {
		out[i] = s.ID
	}

	return out
}

type ServerSuite struct {
	suite.Suite
	h http.Handler
}

func (s *ServerSuite) SetupTest() {
	m, err := mapfile.Load("../../mapfile/testdata/metro.yaml")
	s.Require().NoError(err)

	srv, err := server.New(m, config.Default(), server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	s.h = srv.Handler()
}

func (s *ServerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, req)

	return w
}

func (s *ServerSuite) TestHealth() {
	w := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok","stations":7}`, w.Body.String())
}

func (s *ServerSuite) TestStations() {
	w := s.do(http.MethodGet, "/stations", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var got []struct {
		ID   int     `json:"id"`
		Name string  `json:"name"`
		Y    float64 `json:"y"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got, 7)
	s.Equal(1, got[0].ID)
	s.Equal("Passeig de Gracia", got[5].Name)
	s.Equal(720.0, got[5].Y)
}

func (s *ServerSuite) TestNearest() {
	w := s.do(http.MethodGet, "/stations/nearest?x=10&y=-470", "")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"stations":[5]}`, w.Body.String())

	w = s.do(http.MethodGet, "/stations/nearest?x=0&y=0", "")
	s.JSONEq(`{"stations":[1,4]}`, w.Body.String())

	w = s.do(http.MethodGet, "/stations/nearest?x=abc&y=0", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerSuite) TestRouteQuery() {
	w := s.do(http.MethodGet, "/route?from=3&to=7&algorithm=astar&preference=time", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("miss", w.Header().Get("X-Cache"))

	var body routeBody
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal([]core.StationID{3, 1, 4, 5, 7}, body.ids())
	s.InDelta(230.0, body.Cost, 1e-9)
	s.Equal(1, body.Transfers)
	s.Equal("astar", body.Algorithm)
	s.Equal("time", body.Preference)

	again := s.do(http.MethodGet, "/route?from=3&to=7&algorithm=a*&preference=1", "")
	s.Equal(http.StatusOK, again.Code)
	s.Equal("hit", again.Header().Get("X-Cache"))
	s.JSONEq(w.Body.String(), again.Body.String())
}

func (s *ServerSuite) TestRouteQueryDefaultsAndStrategies() {
	for _, alg := range []string{"dfs", "bfs", "ucs", "astar"} {
		w := s.do(http.MethodGet, "/route?from=2&to=6&algorithm="+alg, "")
		s.Require().Equal(http.StatusOK, w.Code, alg)
		var body routeBody
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal([]core.StationID{2, 1, 4, 6}, body.ids(), alg)
	}
}

func (s *ServerSuite) TestRouteQueryErrors() {
	cases := []struct {
		target string
		code   int
	}{
		{"/route?from=7&to=3", http.StatusNotFound},
		{"/route?from=3&to=99", http.StatusNotFound},
		{"/route?from=x&to=3", http.StatusBadRequest},
		{"/route?from=1&to=3&algorithm=dijkstra", http.StatusBadRequest},
		{"/route?from=1&to=3&preference=7", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := s.do(http.MethodGet, tc.target, "")
		s.Equal(tc.code, w.Code, tc.target)
		s.Contains(w.Body.String(), `"error"`, tc.target)
	}

	w := s.do(http.MethodGet, "/route?from=7&to=3", "")
	s.JSONEq(`{"error":"no route"}`, w.Body.String())
}

func (s *ServerSuite) TestRouteBody() {
	w := s.do(http.MethodPost, "/route",
		`{"origin":{"x":-590,"y":5},"destination":{"id":7},"algorithm":"ucs","preference":"time"}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var body routeBody
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal([]core.StationID{3, 1, 4, 5, 7}, body.ids())
	s.Equal("ucs", body.Algorithm)
}

func (s *ServerSuite) TestRouteBodyErrors() {
	for _, body := range []string{
		`{"origin":`,
		`{"origin":{"x":1},"destination":{"id":7}}`,
		`{"origin":{"id":1},"destination":{}}`,
		`{"origin":{"id":1},"destination":{"id":7},"preference":"fastest"}`,
	} {
		w := s.do(http.MethodPost, "/route", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
	}
}

func (s *ServerSuite) TestMetricsAndCORS() {
	s.do(http.MethodGet, "/route?from=1&to=2", "")

	w := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "metroroute_route_searches_total")
	s.Contains(w.Body.String(), "metroroute_http_requests_total")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestRouteContextEnds() {
	m, err := mapfile.Load("../../mapfile/testdata/metro.yaml")
	s.Require().NoError(err)
	cfg := config.Default()
	cfg.QueryTimeout = time.Nanosecond
	srv, err := server.New(m, cfg, server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/route?from=3&to=7", nil).WithContext(expired))
	s.Equal(http.StatusGatewayTimeout, w.Code)
	s.JSONEq(`{"error":"search timed out"}`, w.Body.String())

	gone, stop := context.WithCancel(context.Background())
	stop()
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/route?from=3&to=7", nil).WithContext(gone))
	s.Equal(499, w.Code)
	s.Empty(w.Body.String())
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestNew_Validation(t *testing.T) {
	_, err := server.New(nil, config.Default())
	assert.ErrorIs(t, err, server.ErrNilMap)

	cfg := config.Default()
	cfg.CORSOrigins = []string{"ftp://nope"}
	_, err = server.New(core.NewMap(), cfg)
	assert.Error(t, err)
}

func TestServer_CacheDisabledAndExpansionCap(t *testing.T) {
	m, err := mapfile.Load("../../mapfile/testdata/metro.yaml")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.CacheSize = 0
	cfg.MaxExpansions = 1
	srv, err := server.New(m, cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/route?from=3&to=7", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/route?from=3&to=3", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
