package ports

import (
	"context"
	"flight-route-service/internal/domain"
)

// Port: a boundary for loading the route graph (airports, routes and
// weather) from a data source.
type NetworkRepository interface {
	// Build a fully populated route graph.
	LoadNetwork(ctx context.Context) (*domain.RouteGraph, error)
}
