package handlers

import (
	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"net/http"
)

// AirportHandler exposes the loaded network read-only.
type AirportHandler struct {
	Graph *domain.RouteGraph
}

func (h *AirportHandler) List(w http.ResponseWriter, r *http.Request) {
	airports := h.Graph.Airports()

	res := dto.ListAirportsResponse{
		Airports: make([]dto.AirportResponse, 0, len(airports)),
	}
	for _, a := range airports {
		neighbors := a.Neighbors
		if neighbors == nil {
			neighbors = []string{}
		}
		res.Airports = append(res.Airports, dto.AirportResponse{
			Code:        a.Code,
			Airfield:    a.AirfieldName,
			Lat:         a.Lat,
			Lon:         a.Lon,
			ParkingCost: a.ParkingCost,
			Neighbors:   neighbors,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
