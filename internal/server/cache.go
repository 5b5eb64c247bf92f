package server

import (
	"github.com/bluele/gcache"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/search"
)

// routeKey identifies one deterministic search.
type routeKey struct {
	strategy   search.Strategy
	preference search.Preference
	from, to   core.StationID
}

// resultCache wraps an LRU of finished responses. A nil *resultCache is a
// disabled cache.
type resultCache struct {
	lru gcache.Cache
}

func newResultCache(size int) *resultCache {
	if size <= 0 {
		return nil
	}

	return &resultCache{lru: gcache.New(size).LRU().Build()}
}

func (c *resultCache) get(k routeKey) (*routeResponse, bool) {
	if c == nil {
		return nil, false
	}
	v, err := c.lru.Get(k)
	if err != nil {
		routeCache.WithLabelValues("miss").Inc()
		return nil, false
	}
	routeCache.WithLabelValues("hit").Inc()

	return v.(*routeResponse), true
}

func (c *resultCache) put(k routeKey, r *routeResponse) {
	if c == nil {
		return
	}
	_ = c.lru.Set(k, r)
}
