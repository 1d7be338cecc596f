package domain

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Per-bit weather weights, most significant bit first.
var weatherWeights = [5]float64{1.05, 1.05, 1.10, 1.15, 1.20}

// Great-circle distance in kilometers between two points given in degrees,
// computed with the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2-lat1) / 2
	dLon := toRad(lon2-lon1) / 2

	h := math.Sin(dLat)*math.Sin(dLat) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon)*math.Sin(dLon)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

// WeatherMultiplier converts a 5-bit weather code into a cost factor.
// Each set bit contributes its weight, each clear bit contributes 1.0.
func WeatherMultiplier(code int) float64 {
	m := 1.0
	for i, w := range weatherWeights {
		if code&(1<<(len(weatherWeights)-1-i)) != 0 {
			m *= w
		}
	}
	return m
}

// ParseWeatherCode validates a raw weather code and returns its multiplier.
func ParseWeatherCode(code int) (float64, error) {
	if code < 0 || code > 31 {
		return 0, fmt.Errorf("parse weather code %d: %w", code, ErrInvalidWeatherCode)
	}
	return WeatherMultiplier(code), nil
}

// FlightCost is the only edge-weight function used by the searches.
func FlightCost(departMultiplier, landMultiplier, distanceKm float64) float64 {
	return 300*departMultiplier*landMultiplier + distanceKm
}
