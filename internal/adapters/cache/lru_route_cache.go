package cache

import (
	"flight-route-service/internal/domain"
	"time"

	"github.com/brunoga/deep"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRURouteCache is an in-memory, size- and age-bounded cache of search
// results. Results are copied on the way in and out so callers can never
// alias a cached waypoint slice. Safe for concurrent use.
type LRURouteCache struct {
	lru *expirable.LRU[string, domain.RouteResult]
}

func NewLRURouteCache(size int, ttl time.Duration) *LRURouteCache {
	return &LRURouteCache{lru: expirable.NewLRU[string, domain.RouteResult](size, nil, ttl)}
}

func (c *LRURouteCache) Get(key string) (domain.RouteResult, bool) {
	r, ok := c.lru.Get(key)
	if !ok {
		return domain.RouteResult{}, false
	}
	return deep.MustCopy(r), true
}

func (c *LRURouteCache) Put(key string, result domain.RouteResult) {
	c.lru.Add(key, deep.MustCopy(result))
}

func (c *LRURouteCache) Len() int { return c.lru.Len() }
