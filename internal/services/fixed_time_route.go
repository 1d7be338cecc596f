package services

import (
	"context"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"fmt"
)

type FixedTimeRequest struct {
	Origin      string
	Destination string
	At          int64
}

// FixedTimeRoute finds the cheapest route with every leg priced at the same
// instant, regardless of how many legs precede it.
//
// The search is Dijkstra with settle-on-pop and stops as soon as the
// destination is popped. A leg without weather data at req.At is not
// traversable. An unreachable destination is a normal "no solution" result.
func FixedTimeRoute(ctx context.Context, g *domain.RouteGraph, req FixedTimeRequest) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "search.fixed_time")(&err)

	origin, dest, err := missionEndpoints(g, req.Origin, req.Destination)
	if err != nil {
		return domain.NoRoute(), fmt.Errorf("fixed time route: %w", err)
	}

	space := newSearchSpace(g)
	space.seed(origin.Code, 0, req.At, []string{origin.Code})

	for {
		if err := ctx.Err(); err != nil {
			return domain.NoRoute(), fmt.Errorf("fixed time route: %w", err)
		}

		cur, ok := space.pop()
		if !ok {
			return domain.NoRoute(), nil
		}

		if cur.code == dest.Code {
			return domain.RouteResult{Found: true, Waypoints: cur.path, Cost: cur.cost}, nil
		}

		from, _ := g.Airport(cur.code)
		for _, code := range from.Neighbors {
			if space.isSettled(code) {
				continue
			}
			to, ok := g.Airport(code)
			if !ok {
				continue
			}

			l, ok := fixedTimeLeg(g, from, to, req.At)
			if !ok {
				continue
			}
			space.relax(cur, code, cur.cost+l.cost, req.At)
		}
	}
}

// missionEndpoints resolves the origin and destination codes of a mission.
func missionEndpoints(g *domain.RouteGraph, origin, destination string) (*domain.Airport, *domain.Airport, error) {
	o, ok := g.Airport(origin)
	if !ok {
		return nil, nil, fmt.Errorf("origin %q: %w", origin, domain.ErrUnknownAirport)
	}
	d, ok := g.Airport(destination)
	if !ok {
		return nil, nil, fmt.Errorf("destination %q: %w", destination, domain.ErrUnknownAirport)
	}
	return o, d, nil
}
