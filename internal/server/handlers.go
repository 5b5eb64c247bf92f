package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/search"
)

const (
	defaultAlgorithm  = "astar"
	defaultPreference = "time"

	// statusClientClosedRequest is nginx's code for a client that went away.
	statusClientClosedRequest = 499
)

// errNoRoute is reported to clients when the frontier empties.
var errNoRoute = errors.New("no route")

type stationView struct {
	ID       core.StationID `json:"id"`
	Name     string         `json:"name"`
	Line     string         `json:"line"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Velocity float64        `json:"velocity"`
}

func viewOf(st core.Station) stationView {
	return stationView{
		ID:       st.ID,
		Name:     st.Name,
		Line:     st.Line,
		X:        st.Location.X(),
		Y:        st.Location.Y(),
		Velocity: st.Velocity,
	}
}

type routeResponse struct {
	Algorithm  string        `json:"algorithm"`
	Preference string        `json:"preference"`
	Route      []stationView `json:"route"`
	Cost       float64       `json:"cost"`
	Transfers  int           `json:"transfers"`
	Expansions int           `json:"expansions"`
}

// endpoint is either a station id or a free coordinate.
type endpoint struct {
	ID *int     `json:"id"`
	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
}

type routeRequest struct {
	Origin      endpoint `json:"origin"`
	Destination endpoint `json:"destination"`
	Algorithm   string   `json:"algorithm"`
	Preference  string   `json:"preference"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "stations": s.m.StationCount()})
}

func (s *Server) handleStations(c *gin.Context) {
	stations := s.m.Stations()
	out := make([]stationView, len(stations))
	for i, st := range stations {
		out[i] = viewOf(st)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleNearest(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	if errX != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "x and y must be numbers"})
		return
	}
	ids := core.NearestStations(s.m, orb.Point{x, y})
	if ids == nil {
		ids = []core.StationID{}
	}
	c.JSON(http.StatusOK, gin.H{"stations": ids})
}

func (s *Server) handleRouteQuery(c *gin.Context) {
	from, errFrom := strconv.Atoi(c.Query("from"))
	to, errTo := strconv.Atoi(c.Query("to"))
	if errFrom != nil || errTo != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be station ids"})
		return
	}
	s.respondRoute(c, core.StationID(from), core.StationID(to),
		c.DefaultQuery("algorithm", defaultAlgorithm), c.DefaultQuery("preference", defaultPreference))
}

func (s *Server) handleRouteBody(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := s.resolve(req.Origin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin: " + err.Error()})
		return
	}
	to, err := s.resolve(req.Destination)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination: " + err.Error()})
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = defaultAlgorithm
	}
	if req.Preference == "" {
		req.Preference = defaultPreference
	}
	s.respondRoute(c, from, to, req.Algorithm, req.Preference)
}

// resolve turns an endpoint into a station id; coordinates pick the first of
// the nearest stations.
func (s *Server) resolve(e endpoint) (core.StationID, error) {
	if e.ID != nil {
		return core.StationID(*e.ID), nil
	}
	if e.X == nil || e.Y == nil {
		return 0, errors.New("need an id or both x and y")
	}
	ids := core.NearestStations(s.m, orb.Point{*e.X, *e.Y})
	if len(ids) == 0 {
		return 0, errors.New("map has no stations")
	}

	return ids[0], nil
}

func (s *Server) respondRoute(c *gin.Context, from, to core.StationID, algorithm, preference string) {
	strategy, err := search.ParseStrategy(algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pref, err := search.ParsePreference(preference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := routeKey{strategy: strategy, preference: pref, from: from, to: to}
	if resp, ok := s.cache.get(key); ok {
		c.Header("X-Cache", "hit")
		c.JSON(http.StatusOK, resp)
		return
	}
	if s.cache != nil {
		c.Header("X-Cache", "miss")
	}

	resp, err := s.route(c.Request.Context(), key)
	switch {
	case err == nil:
		s.cache.put(key, resp)
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, errNoRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": errNoRoute.Error()})
	case errors.Is(err, core.ErrStationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "search timed out"})
	case errors.Is(err, context.Canceled):
		s.log.Debug("client went away", slog.Int("from", int(from)), slog.Int("to", int(to)))
		c.Status(statusClientClosedRequest)
	default:
		s.log.Error("route search failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// route runs one search under the configured deadline and expansion cap.
// A search stopped by the cap is reported as errNoRoute.
func (s *Server) route(ctx context.Context, k routeKey) (*routeResponse, error) {
	if s.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.QueryTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := search.Search(s.m, k.from, k.to, k.strategy,
		search.WithContext(ctx),
		search.WithPreference(k.preference),
		search.WithMaxExpansions(s.cfg.MaxExpansions),
	)
	routeDuration.WithLabelValues(k.strategy.String()).Observe(time.Since(start).Seconds())

	result := "found"
	switch {
	case err != nil:
		result = "error"
	case res.Truncated:
		result = "truncated"
	case !res.Found:
		result = "no_route"
	}
	routeSearches.WithLabelValues(k.strategy.String(), k.preference.String(), result).Inc()
	if err != nil {
		return nil, err
	}
	routeExpansions.WithLabelValues(k.strategy.String()).Observe(float64(res.Expansions))
	if !res.Found {
		s.log.Debug("no route", slog.Int("from", int(k.from)), slog.Int("to", int(k.to)),
			slog.Bool("truncated", res.Truncated), slog.Int("expansions", res.Expansions))
		return nil, errNoRoute
	}

	return s.respond(k, res)
}

func (s *Server) respond(k routeKey, res *search.Result) (*routeResponse, error) {
	ids := res.Path.Route()
	out := &routeResponse{
		Algorithm:  k.strategy.String(),
		Preference: k.preference.String(),
		Route:      make([]stationView, len(ids)),
		Cost:       res.Path.G,
		Expansions: res.Expansions,
	}
	for i, id := range ids {
		st, err := s.m.Station(id)
		if err != nil {
			return nil, err
		}
		out.Route[i] = viewOf(st)
		if i > 0 && s.m.SameStop(ids[i-1], id) {
			out.Transfers++
		}
	}

	return out, nil
}
