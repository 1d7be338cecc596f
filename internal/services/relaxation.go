package services

import (
	"container/heap"
	"flight-route-service/internal/domain"
	"slices"
)

// label is the working state one search keeps for one airport: the cheapest
// cost found so far, the time the aircraft stands there on that path, and the
// waypoints leading to it (the airport itself included).
type label struct {
	code string
	cost float64
	time int64
	path []string
}

type queueItem struct {
	code string
	cost float64
}

type labelQueue []queueItem

func (q labelQueue) Len() int           { return len(q) }
func (q labelQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q labelQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *labelQueue) Push(x any)        { *q = append(*q, x.(queueItem)) }
func (q *labelQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// searchSpace is the side table of one Dijkstra pass. The route graph is
// never written to; discarding the searchSpace is the reset.
type searchSpace struct {
	graph   *domain.RouteGraph
	labels  map[string]*label
	settled map[string]struct{}
	queue   labelQueue
}

func newSearchSpace(g *domain.RouteGraph) *searchSpace {
	return &searchSpace{
		graph:   g,
		labels:  make(map[string]*label),
		settled: make(map[string]struct{}),
	}
}

// seed places the start of the pass. path must already end with code.
func (s *searchSpace) seed(code string, cost float64, t int64, path []string) {
	s.labels[code] = &label{code: code, cost: cost, time: t, path: path}
	heap.Push(&s.queue, queueItem{code: code, cost: cost})
}

// settle marks an airport as final without giving it a label.
func (s *searchSpace) settle(code string) {
	s.settled[code] = struct{}{}
}

func (s *searchSpace) isSettled(code string) bool {
	_, ok := s.settled[code]
	return ok
}

// pop returns the cheapest unsettled label and settles it. Stale queue
// entries (airports settled through a cheaper entry) are dropped.
func (s *searchSpace) pop() (*label, bool) {
	for s.queue.Len() > 0 {
		it := heap.Pop(&s.queue).(queueItem)
		if s.isSettled(it.code) {
			continue
		}
		s.settle(it.code)
		return s.labels[it.code], true
	}
	return nil, false
}

// relax offers a path to code through from. It is recorded only when strictly
// cheaper than what the pass already knows.
func (s *searchSpace) relax(from *label, code string, cost float64, t int64) bool {
	if cur, ok := s.labels[code]; ok && cost >= cur.cost {
		return false
	}

	path := append(slices.Clone(from.path), code)
	s.labels[code] = &label{code: code, cost: cost, time: t, path: path}
	heap.Push(&s.queue, queueItem{code: code, cost: cost})
	return true
}

// leg is one feasible direct flight.
type leg struct {
	to      *domain.Airport
	cost    float64
	arrival int64
}

// fixedTimeLeg prices a leg with both weather lookups taken at the same
// instant. ok is false when either lookup has no data.
func fixedTimeLeg(g *domain.RouteGraph, from, to *domain.Airport, at int64) (leg, bool) {
	dep, ok := g.MultiplierAt(from.AirfieldName, at)
	if !ok {
		return leg{}, false
	}
	land, ok := g.MultiplierAt(to.AirfieldName, at)
	if !ok {
		return leg{}, false
	}

	return leg{
		to:      to,
		cost:    domain.FlightCost(dep, land, from.DistanceTo(to)),
		arrival: at,
	}, true
}

// timedLeg prices a leg departing at depart: the departure weather is read at
// depart, the landing weather at the arrival time given by the aircraft.
func timedLeg(g *domain.RouteGraph, aircraft domain.AircraftModel, from, to *domain.Airport, depart int64) (leg, bool) {
	distance := from.DistanceTo(to)
	arrival := depart + aircraft.Duration(distance)

	dep, ok := g.MultiplierAt(from.AirfieldName, depart)
	if !ok {
		return leg{}, false
	}
	land, ok := g.MultiplierAt(to.AirfieldName, arrival)
	if !ok {
		return leg{}, false
	}

	return leg{
		to:      to,
		cost:    domain.FlightCost(dep, land, distance),
		arrival: arrival,
	}, true
}
