package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteGraphAdjacencyIsDirected(t *testing.T) {
	g := NewRouteGraph()
	g.AddAirport(Airport{Code: "A", AirfieldName: "F1"})
	g.AddAirport(Airport{Code: "B", AirfieldName: "F2"})

	require.NoError(t, g.AddRoute("A", "B"))

	a, ok := g.Airport("A")
	require.True(t, ok)
	b, ok := g.Airport("B")
	require.True(t, ok)

	assert.Equal(t, []string{"B"}, a.Neighbors)
	assert.Empty(t, b.Neighbors)
}

func TestRouteGraphAddRouteUnknownAirport(t *testing.T) {
	g := NewRouteGraph()
	g.AddAirport(Airport{Code: "A"})

	err := g.AddRoute("A", "Z")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAirport))

	err = g.AddRoute("Z", "A")
	assert.True(t, errors.Is(err, ErrUnknownAirport))
}

func TestRouteGraphMultiplierAtExactKeyOnly(t *testing.T) {
	g := NewRouteGraph()
	g.SetWeather("F1", 100, 1.25)

	m, ok := g.MultiplierAt("F1", 100)
	require.True(t, ok)
	assert.Equal(t, 1.25, m)

	_, ok = g.MultiplierAt("F1", 101)
	assert.False(t, ok)

	_, ok = g.MultiplierAt("missing", 100)
	assert.False(t, ok)
}

func TestRouteResultString(t *testing.T) {
	r := RouteResult{Found: true, Waypoints: []string{"A", ParkMarker, "B"}, Cost: 812.123456}
	assert.Equal(t, "A PARK B 812.12346", r.String())
	assert.Equal(t, 1, r.Parks())
	assert.Equal(t, "No possible solution.", NoRoute().String())
}

func TestRouteGraphAddAirportCopiesNeighbors(t *testing.T) {
	neighbors := make([]string, 1, 4)
	neighbors[0] = "B"

	g := NewRouteGraph()
	g.AddAirport(Airport{Code: "A", Neighbors: neighbors})
	g.AddAirport(Airport{Code: "B"})
	g.AddAirport(Airport{Code: "C"})

	other := NewRouteGraph()
	other.AddAirport(Airport{Code: "A", Neighbors: neighbors})
	other.AddAirport(Airport{Code: "D"})

	require.NoError(t, g.AddRoute("A", "C"))
	require.NoError(t, other.AddRoute("A", "D"))

	a, _ := g.Airport("A")
	assert.Equal(t, []string{"B", "C"}, a.Neighbors)
	a, _ = other.Airport("A")
	assert.Equal(t, []string{"B", "D"}, a.Neighbors)
	assert.Equal(t, []string{"B"}, neighbors)
}

func TestRouteGraphLastWeatherSample(t *testing.T) {
	g := NewRouteGraph()
	_, ok := g.LastWeatherSample("F1")
	assert.False(t, ok)

	g.SetWeather("F1", 500, 1)
	g.SetWeather("F1", 100, 1)
	g.SetWeather("F1", 900, 1.05)
	g.SetWeather("F1", 300, 1)

	last, ok := g.LastWeatherSample("F1")
	require.True(t, ok)
	assert.Equal(t, int64(900), last)
}
