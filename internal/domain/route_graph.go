package domain

import (
	"fmt"
	"slices"
	"sort"
)

// RouteGraph owns the airports, their directed adjacency and the weather
// tables of their airfields. It is built once by a loader and then only read:
// searches keep their working state in side tables of their own.
type RouteGraph struct {
	airports  map[string]*Airport
	airfields map[string]*Airfield
}

func NewRouteGraph() *RouteGraph {
	return &RouteGraph{
		airports:  make(map[string]*Airport),
		airfields: make(map[string]*Airfield),
	}
}

// Add an airport. A later airport with the same code replaces the earlier one
// but keeps its adjacency list.
func (g *RouteGraph) AddAirport(a Airport) {
	if prev, ok := g.airports[a.Code]; ok && len(a.Neighbors) == 0 {
		a.Neighbors = prev.Neighbors
	} else {
		a.Neighbors = slices.Clone(a.Neighbors)
	}
	g.airports[a.Code] = &a
}

// Add a directed leg from -> to. Both airports must already exist.
func (g *RouteGraph) AddRoute(from, to string) error {
	src, ok := g.airports[from]
	if !ok {
		return fmt.Errorf("add route %s -> %s: origin %q: %w", from, to, from, ErrUnknownAirport)
	}
	if _, ok := g.airports[to]; !ok {
		return fmt.Errorf("add route %s -> %s: destination %q: %w", from, to, to, ErrUnknownAirport)
	}

	src.Neighbors = append(src.Neighbors, to)
	return nil
}

// Record a weather multiplier sample, creating the airfield on first use.
func (g *RouteGraph) SetWeather(airfieldName string, t int64, multiplier float64) {
	af, ok := g.airfields[airfieldName]
	if !ok {
		af = NewAirfield(airfieldName)
		g.airfields[airfieldName] = af
	}
	af.SetMultiplier(t, multiplier)
}

func (g *RouteGraph) Airport(code string) (*Airport, bool) {
	a, ok := g.airports[code]
	return a, ok
}

func (g *RouteGraph) Airfield(name string) (*Airfield, bool) {
	af, ok := g.airfields[name]
	return af, ok
}

// MultiplierAt returns the weather multiplier of an airfield at time t.
// ok is false when the airfield is unknown or has no sample at exactly t.
func (g *RouteGraph) MultiplierAt(airfieldName string, t int64) (float64, bool) {
	af, ok := g.airfields[airfieldName]
	if !ok {
		return 0, false
	}
	return af.MultiplierAt(t)
}

// LastWeatherSample returns the latest sampled time of an airfield.
func (g *RouteGraph) LastWeatherSample(airfieldName string) (int64, bool) {
	af, ok := g.airfields[airfieldName]
	if !ok {
		return 0, false
	}
	return af.LastSample()
}

// Airports returns every airport sorted by code.
func (g *RouteGraph) Airports() []*Airport {
	out := make([]*Airport, 0, len(g.airports))
	for _, a := range g.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Airfields returns every airfield sorted by name.
func (g *RouteGraph) Airfields() []*Airfield {
	out := make([]*Airfield, 0, len(g.airfields))
	for _, af := range g.airfields {
		out = append(out, af)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (g *RouteGraph) Size() int { return len(g.airports) }
