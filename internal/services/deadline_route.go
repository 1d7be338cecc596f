package services

import (
	"context"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

type DeadlineRequest struct {
	Origin      string
	Destination string
	Start       int64
	Deadline    int64
	Aircraft    domain.AircraftModel
}

// DeadlineOption configures a single deadline search.
type DeadlineOption func(*branchAndBound)

// WithoutPruning disables the incumbent bound. The result is unchanged; only
// the amount of work grows.
func WithoutPruning() DeadlineOption {
	return func(b *branchAndBound) { b.pruning = false }
}

// branchAndBound is the state of one deadline mission. The incumbent lives
// here, so it starts out empty for every mission.
type branchAndBound struct {
	graph    *domain.RouteGraph
	aircraft domain.AircraftModel
	dest     string
	deadline int64
	pruning  bool

	stack []scenario
	best  domain.RouteResult

	scenarios int
	pruned    int
}

// DeadlineRoute finds the cheapest sequence of flights and parking
// increments from req.Origin at req.Start to req.Destination that lands no
// later than req.Deadline.
//
// Legs are priced with the weather at their own departure and arrival times.
// Waiting choices are explored as scenarios on a depth-first work-list; each
// scenario runs one Dijkstra pass, and the first hop out of its airport
// branches into new scenarios that may wait at the arrival airport. A
// scenario that already costs as much as the best complete route is dropped.
func DeadlineRoute(ctx context.Context, g *domain.RouteGraph, req DeadlineRequest, opts ...DeadlineOption) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "search.deadline")(&err)

	origin, dest, err := missionEndpoints(g, req.Origin, req.Destination)
	if err != nil {
		return domain.NoRoute(), fmt.Errorf("deadline route: %w", err)
	}

	b := &branchAndBound{
		graph:    g,
		aircraft: req.Aircraft,
		dest:     dest.Code,
		deadline: req.Deadline,
		pruning:  true,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.push(waitScenarios([]string{origin.Code}, origin, 0, req.Start, req.Deadline, b.lastDeparture(origin), map[string]struct{}{}))

	for len(b.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return domain.NoRoute(), fmt.Errorf("deadline route: %w", err)
		}

		sc := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		if b.dominated(sc.cost) {
			b.pruned++
			continue
		}
		b.scenarios++
		b.explore(sc)
	}

	slog.DebugContext(ctx, "deadline search finished",
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination),
		slog.Int("scenarios", b.scenarios),
		slog.Int("pruned", b.pruned),
		slog.Bool("found", b.best.Found))

	return b.best, nil
}

// push adds scenarios so that the first one is popped first.
func (b *branchAndBound) push(scs []scenario) {
	for i := len(scs) - 1; i >= 0; i-- {
		b.stack = append(b.stack, scs[i])
	}
}

// lastDeparture is the latest weather sample of the airport's airfield.
// Waiting past it leaves no leg that can be priced.
func (b *branchAndBound) lastDeparture(a *domain.Airport) int64 {
	last, ok := b.graph.LastWeatherSample(a.AirfieldName)
	if !ok {
		return math.MinInt64
	}
	return last
}

// dominated reports whether nothing that costs at least cost can beat the
// incumbent.
func (b *branchAndBound) dominated(cost float64) bool {
	return b.pruning && b.best.Found && cost >= b.best.Cost
}

// explore runs the relaxation pass of one scenario.
func (b *branchAndBound) explore(sc scenario) {
	space := newSearchSpace(b.graph)
	for code := range sc.settled {
		space.settle(code)
	}
	space.seed(sc.airport, sc.cost, sc.time, sc.path)

	for {
		cur, ok := space.pop()
		if !ok {
			return
		}
		if cur.time > b.deadline {
			return
		}
		if b.dominated(cur.cost) {
			return
		}

		if cur.code == b.dest {
			if !b.best.Found || cur.cost < b.best.Cost {
				b.best = domain.RouteResult{Found: true, Waypoints: slices.Clone(cur.path), Cost: cur.cost}
			}
			return
		}

		from, _ := b.graph.Airport(cur.code)
		for _, code := range from.Neighbors {
			if space.isSettled(code) {
				continue
			}
			to, ok := b.graph.Airport(code)
			if !ok {
				continue
			}

			l, ok := timedLeg(b.graph, b.aircraft, from, to, cur.time)
			if !ok || l.arrival > b.deadline {
				continue
			}
			cost := cur.cost + l.cost

			if cur.code == sc.airport && code != b.dest {
				path := append(slices.Clone(cur.path), code)
				b.push(waitScenarios(path, to, cost, l.arrival, b.deadline, b.lastDeparture(to), withSettled(sc.settled, sc.airport)))
			}

			space.relax(cur, code, cost, l.arrival)
		}
	}
}
