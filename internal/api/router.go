package api

import (
	"flight-route-service/internal/api/handlers"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil.
func NewRouter(graph *domain.RouteGraph, cache ports.RouteCache) http.Handler {
	airportHandler := &handlers.AirportHandler{Graph: graph}
	routeHandler := &handlers.RouteHandler{Graph: graph, Cache: cache}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)
	r.Get("/airports", airportHandler.List)
	r.Post("/routes/fixed", routeHandler.Fixed)
	r.Post("/routes/deadline", routeHandler.Deadline)

	return r
}
