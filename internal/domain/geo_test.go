package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherMultiplierEndpoints(t *testing.T) {
	assert.Equal(t, 1.0, WeatherMultiplier(0))
	assert.InDelta(t, 1.05*1.05*1.10*1.15*1.20, WeatherMultiplier(31), 1e-12)
}

func TestWeatherMultiplierBitOrder(t *testing.T) {
	tests := []struct {
		code int
		want float64
	}{
		{code: 1, want: 1.20},  // 00001
		{code: 2, want: 1.15},  // 00010
		{code: 4, want: 1.10},  // 00100
		{code: 8, want: 1.05},  // 01000
		{code: 16, want: 1.05}, // 10000
		{code: 5, want: 1.10 * 1.20},
		{code: 24, want: 1.05 * 1.05},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, WeatherMultiplier(tt.code), 1e-12, "code %d", tt.code)
	}
}

func TestParseWeatherCodeRejectsOutOfRange(t *testing.T) {
	for _, code := range []int{-1, 32, 100} {
		_, err := ParseWeatherCode(code)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidWeatherCode))
	}

	m, err := ParseWeatherCode(3)
	require.NoError(t, err)
	assert.InDelta(t, 1.15*1.20, m, 1e-12)
}

func TestDistanceSymmetricAndZero(t *testing.T) {
	points := [][2]float64{
		{41.0082, 28.9784},
		{39.9334, 32.8597},
		{-33.8688, 151.2093},
		{0, 0},
	}

	for _, a := range points {
		assert.Equal(t, 0.0, Distance(a[0], a[1], a[0], a[1]))
		for _, b := range points {
			assert.Equal(t, Distance(a[0], a[1], b[0], b[1]), Distance(b[0], b[1], a[0], a[1]))
		}
	}
}

func TestDistanceOneDegreeOfLongitudeAtEquator(t *testing.T) {
	want := 2 * math.Pi * earthRadiusKm / 360
	assert.InDelta(t, want, Distance(0, 0, 0, 1), 1e-9)
}

func TestFlightCostMonotonic(t *testing.T) {
	base := FlightCost(1.1, 1.2, 500)

	assert.Equal(t, 300.0+100, FlightCost(1, 1, 100))
	assert.Greater(t, FlightCost(1.1, 1.2, 501), base)
	assert.Greater(t, FlightCost(1.2, 1.2, 500), base)
	assert.Greater(t, FlightCost(1.1, 1.3, 500), base)
	assert.GreaterOrEqual(t, FlightCost(1.1, 1.2, 500), base)
}
