package domain

import "errors"

var (
	ErrUnknownAirport     = errors.New("unknown airport")
	ErrUnknownAircraft    = errors.New("unknown aircraft model")
	ErrInvalidWeatherCode = errors.New("invalid weather code")
	ErrMalformedMission   = errors.New("malformed mission")
)
