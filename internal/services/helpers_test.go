package services

import (
	"flight-route-service/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// kmPerDegree at the equator, for placing airports a known distance apart.
const kmPerDegree = 6371.0 * math.Pi / 180

type testAirport struct {
	code    string
	lonKm   float64
	parking float64
}

// buildGraph places airports along the equator, each on its own airfield
// named after its code, and links them in the given order.
func buildGraph(t *testing.T, airports []testAirport, routes [][2]string) *domain.RouteGraph {
	t.Helper()

	g := domain.NewRouteGraph()
	for _, a := range airports {
		g.AddAirport(domain.Airport{
			Code:         a.code,
			AirfieldName: "F" + a.code,
			Lat:          0,
			Lon:          a.lonKm / kmPerDegree,
			ParkingCost:  a.parking,
		})
	}
	for _, r := range routes {
		require.NoError(t, g.AddRoute(r[0], r[1]))
	}
	return g
}

// uniformWeather records code for every airfield at every time step
// from 0 to until inclusive.
func uniformWeather(g *domain.RouteGraph, code int, until int64) {
	for _, a := range g.Airports() {
		for ts := int64(0); ts <= until; ts += ParkSeconds {
			g.SetWeather(a.AirfieldName, ts, domain.WeatherMultiplier(code))
		}
	}
}

func legDistance(t *testing.T, g *domain.RouteGraph, from, to string) float64 {
	t.Helper()
	a, ok := g.Airport(from)
	require.True(t, ok)
	b, ok := g.Airport(to)
	require.True(t, ok)
	return a.DistanceTo(b)
}

// lineGraph is A -> B -> C with 100 km legs.
func lineGraph(t *testing.T) *domain.RouteGraph {
	return buildGraph(t,
		[]testAirport{{"A", 0, 10}, {"B", 100, 10}, {"C", 200, 10}},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)
}
