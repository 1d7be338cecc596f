package ports

import "flight-route-service/internal/domain"

// Optional memoization of search results keyed by a mission fingerprint.
type RouteCache interface {
	Get(key string) (domain.RouteResult, bool)
	Put(key string, result domain.RouteResult)
}
