package handlers

import (
	"errors"
	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
)

// RouteHandler answers single-mission route queries.
//
// The searches themselves are sequential: one mission at a time runs
// against the shared graph, the way a mission file is processed.
type RouteHandler struct {
	Graph *domain.RouteGraph
	// Optional.
	Cache ports.RouteCache
	// Longest accepted deadline - start, in seconds. Zero means DefaultMaxHorizon.
	MaxHorizon int64

	mu sync.Mutex
}

// DefaultMaxHorizon bounds deadline searches to 31 days.
const DefaultMaxHorizon int64 = 31 * 24 * 3600

func (h *RouteHandler) maxHorizon() int64 {
	if h.MaxHorizon > 0 {
		return h.MaxHorizon
	}
	return DefaultMaxHorizon
}

func (h *RouteHandler) Fixed(w http.ResponseWriter, r *http.Request) {
	var req dto.FixedRouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	origin, dest, ok := endpoints(w, r, req.Origin, req.Destination)
	if !ok {
		return
	}

	key := fmt.Sprintf("fixed|%s|%s|%d", origin, dest, req.At)
	h.serve(w, r, key, func() (domain.RouteResult, error) {
		return services.FixedTimeRoute(r.Context(), h.Graph, services.FixedTimeRequest{
			Origin:      origin,
			Destination: dest,
			At:          req.At,
		})
	})
}

func (h *RouteHandler) Deadline(w http.ResponseWriter, r *http.Request) {
	var req dto.DeadlineRouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	origin, dest, ok := endpoints(w, r, req.Origin, req.Destination)
	if !ok {
		return
	}

	aircraft, err := domain.ParseAircraftModel(req.Aircraft)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown aircraft model")
		return
	}

	if req.Deadline-req.Start > h.maxHorizon() {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("deadline must be within %d seconds of start", h.maxHorizon()))
		return
	}

	key := fmt.Sprintf("deadline|%s|%s|%d|%d|%d", origin, dest, req.Start, req.Deadline, aircraft)
	h.serve(w, r, key, func() (domain.RouteResult, error) {
		return services.DeadlineRoute(r.Context(), h.Graph, services.DeadlineRequest{
			Origin:      origin,
			Destination: dest,
			Start:       req.Start,
			Deadline:    req.Deadline,
			Aircraft:    aircraft,
		})
	})
}

func endpoints(w http.ResponseWriter, r *http.Request, origin, dest string) (string, string, bool) {
	origin = strings.TrimSpace(origin)
	dest = strings.TrimSpace(dest)
	if origin == "" || dest == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return "", "", false
	}
	return origin, dest, true
}

func (h *RouteHandler) serve(w http.ResponseWriter, r *http.Request, key string, search func() (domain.RouteResult, error)) {
	if h.Cache != nil {
		if res, ok := h.Cache.Get(key); ok {
			writeJSON(w, r, http.StatusOK, toRouteResponse(res, true))
			return
		}
	}

	h.mu.Lock()
	res, err := search()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, domain.ErrUnknownAirport) {
			writeError(w, r, http.StatusNotFound, "unknown airport")
			return
		}
		if r.Context().Err() != nil {
			// Client went away; nobody reads the response.
			return
		}
		slog.ErrorContext(r.Context(), "route search failed", slog.String("key", key), slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		h.Cache.Put(key, res)
	}
	writeJSON(w, r, http.StatusOK, toRouteResponse(res, false))
}

func toRouteResponse(res domain.RouteResult, cached bool) dto.RouteResponse {
	out := dto.RouteResponse{
		Found:     res.Found,
		Waypoints: []string{},
		Summary:   res.String(),
		Cached:    cached,
	}
	if res.Found {
		cost := res.Cost
		out.Cost = &cost
		out.Waypoints = res.Waypoints
	}
	return out
}
