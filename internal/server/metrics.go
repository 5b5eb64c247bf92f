package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequests counts served requests by method, matched route and status.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metroroute_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// routeSearches counts route searches by outcome.
	routeSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metroroute_route_searches_total",
		Help: "Total route searches by algorithm, preference and result",
	}, []string{"algorithm", "preference", "result"}) // result: found|no_route|truncated|error

	// routeDuration tracks search latency, cache hits excluded.
	routeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "metroroute_route_duration_seconds",
		Help:    "Route search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50µs to ~1.6s
	}, []string{"algorithm"})

	// routeExpansions tracks how many paths a search expanded.
	routeExpansions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "metroroute_route_expansions",
		Help:    "Number of frontier expansions per route search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"algorithm"})

	// routeCache counts result cache lookups.
	routeCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "metroroute_route_cache_total",
		Help: "Route cache lookups by result",
	}, []string{"result"}) // "hit" or "miss"
)
