package domain

import (
	"fmt"
	"strings"
)

// ParkMarker is the waypoint emitted for one parking increment.
const ParkMarker = "PARK"

// Represents the outcome of one search.
// A RouteResult with Found == false is the explicit "no solution" outcome;
// Waypoints and Cost are then meaningless.
type RouteResult struct {
	Found     bool
	Waypoints []string
	Cost      float64
}

// NoRoute is the "no solution" result.
func NoRoute() RouteResult { return RouteResult{} }

// Format the result the way the report files expect: space-separated
// waypoints followed by the cost with five decimals.
func (r RouteResult) String() string {
	if !r.Found {
		return "No possible solution."
	}
	return fmt.Sprintf("%s %.5f", strings.Join(r.Waypoints, " "), r.Cost)
}

// Parks counts the parking increments in the route.
func (r RouteResult) Parks() int {
	n := 0
	for _, w := range r.Waypoints {
		if w == ParkMarker {
			n++
		}
	}
	return n
}
