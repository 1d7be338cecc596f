package domain

// Represents one planning request read from a mission file.
// Start and Deadline are seconds since epoch; Deadline bounds Task 2 only.
type Mission struct {
	Origin      string
	Destination string
	Start       int64
	Deadline    int64
}

// Missions sharing one aircraft, as read from a single mission file.
type MissionPlan struct {
	Aircraft AircraftModel
	Missions []Mission
}
