package repositories

import (
	"flight-route-service/internal/domain"
	"fmt"
)

// WeatherCodes maps airfield name to time to raw weather code. Stores keep
// raw codes; the route graph keeps multipliers.
type WeatherCodes map[string]map[int64]int

func (w WeatherCodes) Set(airfield string, t int64, code int) {
	samples, ok := w[airfield]
	if !ok {
		samples = make(map[int64]int)
		w[airfield] = samples
	}
	samples[t] = code
}

// Apply converts every code to its multiplier and records it in g.
func (w WeatherCodes) Apply(g *domain.RouteGraph) error {
	for airfield, samples := range w {
		for t, code := range samples {
			m, err := domain.ParseWeatherCode(code)
			if err != nil {
				return fmt.Errorf("apply weather %s@%d: %w", airfield, t, err)
			}
			g.SetWeather(airfield, t, m)
		}
	}
	return nil
}

// Len counts the samples across all airfields.
func (w WeatherCodes) Len() int {
	n := 0
	for _, samples := range w {
		n += len(samples)
	}
	return n
}
