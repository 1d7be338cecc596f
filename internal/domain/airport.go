package domain

// Airport is a node of the route graph. Neighbors holds the codes of the
// airports reachable by a direct leg, in insertion order. Adjacency is
// directed: A listing B says nothing about B listing A.
type Airport struct {
	Code         string
	AirfieldName string
	Lat          float64
	Lon          float64
	ParkingCost  float64
	Neighbors    []string
}

// Length in kilometers of the direct leg from a to b.
func (a *Airport) DistanceTo(b *Airport) float64 {
	return Distance(a.Lat, a.Lon, b.Lat, b.Lon)
}
