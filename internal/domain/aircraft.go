package domain

import (
	"fmt"
	"strings"
)

// Flight durations are quantised into three tiers.
const (
	ShortHaulSeconds  int64 = 6 * 3600
	MediumHaulSeconds int64 = 12 * 3600
	LongHaulSeconds   int64 = 18 * 3600
)

// AircraftModel enumerates the aircraft the planner knows how to fly.
type AircraftModel int

const (
	Carreidas160 AircraftModel = iota
	OrionIII
	SkyfleetS570
	T16Skyhopper
)

// AircraftModels lists every model in declaration order.
var AircraftModels = []AircraftModel{Carreidas160, OrionIII, SkyfleetS570, T16Skyhopper}

func (m AircraftModel) String() string {
	switch m {
	case Carreidas160:
		return "Carreidas 160"
	case OrionIII:
		return "Orion III"
	case SkyfleetS570:
		return "Skyfleet S570"
	case T16Skyhopper:
		return "T-16 Skyhopper"
	}
	return fmt.Sprintf("AircraftModel(%d)", int(m))
}

// ParseAircraftModel maps a model name, as written in mission files, to its model.
func ParseAircraftModel(name string) (AircraftModel, error) {
	name = strings.TrimSpace(name)
	for _, m := range AircraftModels {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("parse aircraft model %q: %w", name, ErrUnknownAircraft)
}

// breakpoints returns the upper distance bounds (km, inclusive) of the
// short and medium tiers.
func (m AircraftModel) breakpoints() (short, medium int64) {
	switch m {
	case Carreidas160:
		return 175, 350
	case OrionIII:
		return 1500, 3000
	case SkyfleetS570:
		return 500, 1000
	case T16Skyhopper:
		return 2500, 5000
	}
	panic(fmt.Sprintf("aircraft: unhandled model %d", int(m)))
}

// Duration returns the flight time in seconds for a leg of the given length.
// Distances are truncated to whole kilometers before the tier comparison.
func (m AircraftModel) Duration(distanceKm float64) int64 {
	short, medium := m.breakpoints()
	km := int64(distanceKm)

	switch {
	case km <= short:
		return ShortHaulSeconds
	case km <= medium:
		return MediumHaulSeconds
	default:
		return LongHaulSeconds
	}
}
