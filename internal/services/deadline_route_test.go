package services

import (
	"context"
	"errors"
	"flight-route-service/internal/domain"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deadlineReq(origin, dest string, start, deadline int64) DeadlineRequest {
	return DeadlineRequest{
		Origin:      origin,
		Destination: dest,
		Start:       start,
		Deadline:    deadline,
		Aircraft:    domain.Carreidas160,
	}
}

// replay walks a result's waypoints and returns its cost and the time the
// aircraft stands at the last waypoint.
func replay(t *testing.T, g *domain.RouteGraph, aircraft domain.AircraftModel, start int64, waypoints []string) (float64, int64) {
	t.Helper()
	require.NotEmpty(t, waypoints)

	cur, ok := g.Airport(waypoints[0])
	require.True(t, ok)
	now := start
	cost := 0.0

	for _, w := range waypoints[1:] {
		if w == domain.ParkMarker {
			now += ParkSeconds
			cost += cur.ParkingCost
			continue
		}

		next, ok := g.Airport(w)
		require.True(t, ok)
		require.Contains(t, cur.Neighbors, w, "%s -> %s is not a route", cur.Code, w)

		l, ok := timedLeg(g, aircraft, cur, next, now)
		require.True(t, ok, "leg %s -> %s at %d has no weather", cur.Code, w, now)
		cost += l.cost
		now = l.arrival
		cur = next
	}
	return cost, now
}

// bruteForce enumerates every simple itinerary with any number of parking
// increments that lands by the deadline.
func bruteForce(g *domain.RouteGraph, aircraft domain.AircraftModel, origin, dest string, start, deadline int64) (float64, bool) {
	best, found := 0.0, false
	if start > deadline {
		return best, found
	}

	var dfs func(code string, now int64, cost float64, visited map[string]bool)
	dfs = func(code string, now int64, cost float64, visited map[string]bool) {
		if code == dest {
			if !found || cost < best {
				best, found = cost, true
			}
			return
		}

		a, _ := g.Airport(code)
		if now+ParkSeconds < deadline {
			dfs(code, now+ParkSeconds, cost+a.ParkingCost, visited)
		}

		for _, nb := range a.Neighbors {
			if visited[nb] {
				continue
			}
			to, _ := g.Airport(nb)
			l, ok := timedLeg(g, aircraft, a, to, now)
			if !ok || l.arrival > deadline {
				continue
			}
			visited[nb] = true
			dfs(nb, l.arrival, cost+l.cost, visited)
			delete(visited, nb)
		}
	}

	dfs(origin, start, 0, map[string]bool{origin: true})
	return best, found
}

// randomNetwork builds a small network with patchy, time-varying weather.
func randomNetwork(t *testing.T, seed int64, n int, until int64) *domain.RouteGraph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	airports := make([]testAirport, n)
	for i := range airports {
		airports[i] = testAirport{
			code:    fmt.Sprintf("P%d", i),
			lonKm:   float64(rng.Intn(400)),
			parking: float64(rng.Intn(120)),
		}
	}

	var routes [][2]string
	for i := range airports {
		for j := range airports {
			if i != j && rng.Float64() < 0.45 {
				routes = append(routes, [2]string{airports[i].code, airports[j].code})
			}
		}
	}

	g := buildGraph(t, airports, routes)
	for _, a := range g.Airports() {
		for ts := int64(0); ts <= until; ts += ParkSeconds {
			if rng.Float64() < 0.1 {
				continue
			}
			g.SetWeather(a.AirfieldName, ts, domain.WeatherMultiplier(rng.Intn(32)))
		}
	}
	return g
}

func TestDeadlineRouteLineGraph(t *testing.T) {
	g := lineGraph(t)
	uniformWeather(g, 0, 4*ParkSeconds)

	res, err := DeadlineRoute(context.Background(), g, deadlineReq("A", "C", 0, 2*ParkSeconds))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Waypoints)
	assert.InDelta(t, 800, res.Cost, 1e-6)

	res, err = DeadlineRoute(context.Background(), g, deadlineReq("A", "C", 0, 2*ParkSeconds-1))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestDeadlineRouteWaitsOutBadWeather(t *testing.T) {
	g := buildGraph(t,
		[]testAirport{{"A", 0, 10}, {"B", 100, 10}},
		[][2]string{{"A", "B"}},
	)
	g.SetWeather("FA", 0, domain.WeatherMultiplier(31))
	g.SetWeather("FA", ParkSeconds, domain.WeatherMultiplier(0))
	g.SetWeather("FB", ParkSeconds, domain.WeatherMultiplier(0))
	g.SetWeather("FB", 2*ParkSeconds, domain.WeatherMultiplier(0))

	res, err := DeadlineRoute(context.Background(), g, deadlineReq("A", "B", 0, 2*ParkSeconds))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", domain.ParkMarker, "B"}, res.Waypoints)
	assert.InDelta(t, 10+400, res.Cost, 1e-6)

	// Without time for the wait the bad-weather departure is the only option.
	res, err = DeadlineRoute(context.Background(), g, deadlineReq("A", "B", 0, ParkSeconds))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B"}, res.Waypoints)
	assert.InDelta(t, domain.FlightCost(domain.WeatherMultiplier(31), 1, 100), res.Cost, 1e-6)
}

func TestDeadlineRouteMissingWeatherMeansNoSolution(t *testing.T) {
	g := buildGraph(t,
		[]testAirport{{"A", 0, 10}, {"B", 100, 10}},
		[][2]string{{"A", "B"}},
	)
	uniformWeather(g, 0, 4*ParkSeconds)

	only := domain.NewRouteGraph()
	for _, a := range g.Airports() {
		only.AddAirport(*a)
	}
	for ts := int64(0); ts <= 4*ParkSeconds; ts += ParkSeconds {
		only.SetWeather("FA", ts, 1)
	}

	res, err := DeadlineRoute(context.Background(), only, deadlineReq("A", "B", 0, 4*ParkSeconds))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = DeadlineRoute(context.Background(), g, deadlineReq("A", "B", 0, 4*ParkSeconds))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestDeadlineRouteStartAfterDeadline(t *testing.T) {
	g := lineGraph(t)
	uniformWeather(g, 0, 4*ParkSeconds)

	res, err := DeadlineRoute(context.Background(), g, deadlineReq("A", "A", ParkSeconds, 0))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = DeadlineRoute(context.Background(), g, deadlineReq("A", "A", 0, 0))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Waypoints)
	assert.Equal(t, 0.0, res.Cost)
}

func TestDeadlineRouteUnknownAirport(t *testing.T) {
	g := lineGraph(t)

	_, err := DeadlineRoute(context.Background(), g, deadlineReq("X", "A", 0, ParkSeconds))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownAirport))
}

func TestWaitScenariosAdvanceBySixHours(t *testing.T) {
	a := &domain.Airport{Code: "A", ParkingCost: 25}
	scs := waitScenarios([]string{"A"}, a, 100, 1000, 1000+3*ParkSeconds, math.MaxInt64, map[string]struct{}{})

	require.Len(t, scs, 3)
	for k, sc := range scs {
		assert.Equal(t, int64(1000)+int64(k)*ParkSeconds, sc.time)
		assert.Equal(t, 100+float64(k)*25, sc.cost)
		assert.Len(t, sc.path, 1+k)
		for _, w := range sc.path[1:] {
			assert.Equal(t, domain.ParkMarker, w)
		}
	}

	// Scenario paths must not share backing arrays.
	scs[1].path[0] = "Z"
	assert.Equal(t, "A", scs[2].path[0])
}

func TestWaitScenariosStopAtLastWeatherSample(t *testing.T) {
	a := &domain.Airport{Code: "A", ParkingCost: 25}

	scs := waitScenarios([]string{"A"}, a, 0, 0, 1e11, 2*ParkSeconds, map[string]struct{}{})
	require.Len(t, scs, 3)
	assert.Equal(t, 2*ParkSeconds, scs[2].time)

	// Without any sample only the immediate departure remains.
	scs = waitScenarios([]string{"A"}, a, 0, 0, 1e11, math.MinInt64, map[string]struct{}{})
	require.Len(t, scs, 1)
	assert.Equal(t, int64(0), scs[0].time)
}

func TestDeadlineRouteFarDeadline(t *testing.T) {
	g := lineGraph(t)
	uniformWeather(g, 0, 4*ParkSeconds)

	res, err := DeadlineRoute(context.Background(), g, deadlineReq("A", "C", 0, 2e11))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Waypoints)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DeadlineRoute(ctx, g, deadlineReq("A", "C", 0, 2e11))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeadlineRouteMatchesExhaustiveSearch(t *testing.T) {
	const deadline = 4 * ParkSeconds

	for seed := int64(1); seed <= 4; seed++ {
		g := randomNetwork(t, seed, 6, deadline)

		for _, a := range g.Airports() {
			for _, b := range g.Airports() {
				for _, start := range []int64{0, ParkSeconds} {
					req := deadlineReq(a.Code, b.Code, start, deadline)

					pruned, err := DeadlineRoute(context.Background(), g, req)
					require.NoError(t, err)
					unpruned, err := DeadlineRoute(context.Background(), g, req, WithoutPruning())
					require.NoError(t, err)

					name := fmt.Sprintf("seed=%d %s->%s start=%d", seed, a.Code, b.Code, start)
					require.Equal(t, unpruned, pruned, name)

					want, found := bruteForce(g, req.Aircraft, a.Code, b.Code, start, deadline)
					require.Equal(t, found, pruned.Found, name)
					if !found {
						continue
					}
					assert.InDelta(t, want, pruned.Cost, 1e-6, name)

					cost, end := replay(t, g, req.Aircraft, start, pruned.Waypoints)
					assert.LessOrEqual(t, end, deadline, name)
					assert.InDelta(t, pruned.Cost, cost, 1e-6, name)
				}
			}
		}
	}
}

func TestDeadlineRouteIndependentAcrossMissions(t *testing.T) {
	const deadline = 4 * ParkSeconds
	missions := []DeadlineRequest{
		deadlineReq("P0", "P3", 0, deadline),
		deadlineReq("P2", "P5", ParkSeconds, deadline),
		deadlineReq("P4", "P1", 0, deadline),
	}

	shared := randomNetwork(t, 11, 6, deadline)
	var sequential []domain.RouteResult
	for _, m := range missions {
		res, err := DeadlineRoute(context.Background(), shared, m)
		require.NoError(t, err)
		sequential = append(sequential, res)
	}

	for i, m := range missions {
		fresh := randomNetwork(t, 11, 6, deadline)
		res, err := DeadlineRoute(context.Background(), fresh, m)
		require.NoError(t, err)
		assert.Equal(t, res, sequential[i])
	}
}
