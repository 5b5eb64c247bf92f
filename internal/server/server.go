// Package server exposes route search over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /stations
//	GET  /stations/nearest?x=&y=
//	GET  /route?from=&to=&algorithm=&preference=
//	POST /route
//	GET  /metrics
//
// The map is read-only once the server is built; every request runs its own
// search, so requests are served concurrently.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/internal/config"
)

// ErrNilMap is returned by New when no map is supplied.
var ErrNilMap = errors.New("server: map is nil")

const shutdownTimeout = 10 * time.Second

// Server serves one core.Map.
type Server struct {
	m      *core.Map
	cfg    config.Config
	cache  *resultCache
	log    *slog.Logger
	engine *gin.Engine
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger replaces the default component logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New wires routes, middleware, CORS and the result cache for m.
func New(m *core.Map, cfg config.Config, opts ...Option) (*Server, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	s := &Server{
		m:     m,
		cfg:   cfg,
		cache: newResultCache(cfg.CacheSize),
		log:   slog.Default().With(slog.String("component", "server")),
	}
	for _, opt := range opts {
		opt(s)
	}

	corsCfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("server: cors: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log), cors.New(corsCfg))

	r.GET("/healthz", s.handleHealth)
	r.GET("/stations", s.handleStations)
	r.GET("/stations/nearest", s.handleNearest)
	r.GET("/route", s.handleRouteQuery)
	r.POST("/route", s.handleRouteBody)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine = r

	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", s.cfg.Addr), slog.Int("stations", s.m.StationCount()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
