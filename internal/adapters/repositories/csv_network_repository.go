package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSV-file backed implementation of the NetworkRepository port.
//
// Airports:   code,airfield,lat,lon,parkingCost
// Directions: from,to
// Weather:    airfield,time,code
//
// Every file starts with a header line, which is skipped.
type CSVNetworkRepository struct {
	AirportsPath   string
	DirectionsPath string
	Weather        ports.WeatherSource
}

func NewCSVNetworkRepository(airportsPath, directionsPath string, weather ports.WeatherSource) *CSVNetworkRepository {
	return &CSVNetworkRepository{
		AirportsPath:   airportsPath,
		DirectionsPath: directionsPath,
		Weather:        weather,
	}
}

// Build the route graph from the three CSV inputs.
func (c *CSVNetworkRepository) LoadNetwork(ctx context.Context) (_ *domain.RouteGraph, err error) {
	defer obs.Time(ctx, "network.csv.Load")(&err)

	g, codes, err := c.LoadSeed(ctx)
	if err != nil {
		return nil, err
	}
	if err := codes.Apply(g); err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	return g, nil
}

// LoadSeed reads airports and routes into a graph but returns the weather
// as raw codes, which is what the SQL store persists.
func (c *CSVNetworkRepository) LoadSeed(ctx context.Context) (*domain.RouteGraph, WeatherCodes, error) {
	if c.Weather == nil {
		return nil, nil, errors.New("load network: weather source is nil")
	}

	g := domain.NewRouteGraph()

	if err := readFile(c.AirportsPath, func(r io.Reader) error { return ReadAirports(r, g) }); err != nil {
		return nil, nil, fmt.Errorf("load network: %w", err)
	}
	if err := readFile(c.DirectionsPath, func(r io.Reader) error { return ReadRoutes(r, g) }); err != nil {
		return nil, nil, fmt.Errorf("load network: %w", err)
	}

	wr, err := c.Weather.OpenWeather(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load network: open weather: %w", err)
	}
	defer wr.Close()

	codes, err := ReadWeatherCodes(wr)
	if err != nil {
		return nil, nil, fmt.Errorf("load network: %w", err)
	}

	return g, codes, nil
}

func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// forEachRecord calls fn for every record after the header. line is 1-based
// and counts the header.
func forEachRecord(r io.Reader, fields int, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read csv: %w", err)
		}
		if line == 1 {
			continue
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if err := fn(line, rec); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

// Read airport rows into g.
func ReadAirports(r io.Reader, g *domain.RouteGraph) error {
	return forEachRecord(r, 5, func(line int, rec []string) error {
		if rec[0] == "" {
			return errors.New("read airports: empty airport code")
		}

		lat, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return fmt.Errorf("read airports: latitude %q: %w", rec[2], err)
		}
		lon, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return fmt.Errorf("read airports: longitude %q: %w", rec[3], err)
		}
		parking, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return fmt.Errorf("read airports: parking cost %q: %w", rec[4], err)
		}

		g.AddAirport(domain.Airport{
			Code:         rec[0],
			AirfieldName: rec[1],
			Lat:          lat,
			Lon:          lon,
			ParkingCost:  parking,
		})
		return nil
	})
}

// Read directed routes into g. Airports must be loaded first.
func ReadRoutes(r io.Reader, g *domain.RouteGraph) error {
	return forEachRecord(r, 2, func(line int, rec []string) error {
		if err := g.AddRoute(rec[0], rec[1]); err != nil {
			return fmt.Errorf("read routes: %w", err)
		}
		return nil
	})
}

// Read weather codes into g, converting each to its multiplier.
func ReadWeather(r io.Reader, g *domain.RouteGraph) error {
	codes, err := ReadWeatherCodes(r)
	if err != nil {
		return err
	}
	return codes.Apply(g)
}

// Read raw weather codes without converting them.
func ReadWeatherCodes(r io.Reader) (WeatherCodes, error) {
	codes := WeatherCodes{}
	err := forEachRecord(r, 3, func(line int, rec []string) error {
		ts, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return fmt.Errorf("read weather: time %q: %w", rec[1], err)
		}
		code, err := strconv.Atoi(rec[2])
		if err != nil {
			return fmt.Errorf("read weather: code %q: %w", rec[2], err)
		}
		if _, err := domain.ParseWeatherCode(code); err != nil {
			return fmt.Errorf("read weather: %w", err)
		}

		codes.Set(rec[0], ts, code)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}
