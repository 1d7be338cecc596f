package dto

type AirportResponse struct {
	Code        string   `json:"code"`
	Airfield    string   `json:"airfield"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	ParkingCost float64  `json:"parking_cost"`
	Neighbors   []string `json:"neighbors"`
}

type ListAirportsResponse struct {
	Airports []AirportResponse `json:"airports"`
}
