package services

import (
	"flight-route-service/internal/domain"
	"slices"
)

// ParkSeconds is the length of one parking increment.
const ParkSeconds int64 = 6 * 3600

// scenario is one candidate partial itinerary of the deadline search. It is
// never modified after creation: children copy what they extend.
type scenario struct {
	path    []string
	airport string
	cost    float64
	time    int64
	settled map[string]struct{}
}

// withSettled returns a copy of the lineage settled set plus code.
func withSettled(settled map[string]struct{}, code string) map[string]struct{} {
	out := make(map[string]struct{}, len(settled)+1)
	for c := range settled {
		out[c] = struct{}{}
	}
	out[code] = struct{}{}
	return out
}

// waitScenarios enumerates staying put at airport for k = 0, 1, 2, ... parking
// increments. Standing still is allowed while t is within the deadline; each
// further increment must end strictly before it so that there is time left
// to act, and no later than lastDeparture, the last time a leg out of the
// airport can still be priced.
func waitScenarios(path []string, airport *domain.Airport, cost float64, t, deadline, lastDeparture int64, settled map[string]struct{}) []scenario {
	var out []scenario
	if t > deadline {
		return out
	}

	p := slices.Clone(path)
	for k := int64(0); k == 0 || (t+k*ParkSeconds < deadline && t+k*ParkSeconds <= lastDeparture); k++ {
		if k > 0 {
			p = append(slices.Clone(p), domain.ParkMarker)
		}
		out = append(out, scenario{
			path:    p,
			airport: airport.Code,
			cost:    cost + float64(k)*airport.ParkingCost,
			time:    t + k*ParkSeconds,
			settled: settled,
		})
	}
	return out
}
