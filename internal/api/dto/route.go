package dto

type FixedRouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	At          int64  `json:"at"`
}

type DeadlineRouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Start       int64  `json:"start"`
	Deadline    int64  `json:"deadline"`
	Aircraft    string `json:"aircraft"`
}

type RouteResponse struct {
	Found     bool     `json:"found"`
	Waypoints []string `json:"waypoints"`
	Cost      *float64 `json:"cost,omitempty"`
	// Same line the report files carry, e.g. "LTAC PARK LTBA 1234.50000".
	Summary string `json:"summary"`
	Cached  bool   `json:"cached"`
}
