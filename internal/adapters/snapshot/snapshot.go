// Package snapshot stores a whole route graph in one file so that a run can
// skip parsing the CSV inputs. The format is msgpack, compressed with zstd.
package snapshot

import (
	"context"
	"errors"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

const formatVersion = 1

type airportRecord struct {
	Code        string   `msgpack:"code"`
	Airfield    string   `msgpack:"airfield"`
	Lat         float64  `msgpack:"lat"`
	Lon         float64  `msgpack:"lon"`
	ParkingCost float64  `msgpack:"parking_cost"`
	Neighbors   []string `msgpack:"neighbors"`
}

type file struct {
	Version  int                          `msgpack:"version"`
	Airports []airportRecord              `msgpack:"airports"`
	Weather  map[string]map[int64]float64 `msgpack:"weather"`
}

// Save writes g to w.
func Save(w io.Writer, g *domain.RouteGraph) error {
	f := file{
		Version: formatVersion,
		Weather: make(map[string]map[int64]float64),
	}
	for _, a := range g.Airports() {
		f.Airports = append(f.Airports, airportRecord{
			Code:        a.Code,
			Airfield:    a.AirfieldName,
			Lat:         a.Lat,
			Lon:         a.Lon,
			ParkingCost: a.ParkingCost,
			Neighbors:   a.Neighbors,
		})
	}
	for _, af := range g.Airfields() {
		f.Weather[af.Name] = af.Samples()
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("save snapshot: create zstd writer: %w", err)
	}
	defer zw.Close()

	if err := msgpack.NewEncoder(zw).Encode(&f); err != nil {
		return fmt.Errorf("save snapshot: encode: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("save snapshot: close zstd writer: %w", err)
	}
	return nil
}

// Load reads a graph written by Save.
func Load(r io.Reader) (*domain.RouteGraph, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: create zstd reader: %w", err)
	}
	defer zr.Close()

	var f file
	if err := msgpack.NewDecoder(zr).Decode(&f); err != nil {
		return nil, fmt.Errorf("load snapshot: decode: %w", err)
	}
	if f.Version != formatVersion {
		return nil, fmt.Errorf("load snapshot: unsupported version %d", f.Version)
	}

	g := domain.NewRouteGraph()
	for _, a := range f.Airports {
		g.AddAirport(domain.Airport{
			Code:         a.Code,
			AirfieldName: a.Airfield,
			Lat:          a.Lat,
			Lon:          a.Lon,
			ParkingCost:  a.ParkingCost,
		})
	}
	for _, a := range f.Airports {
		for _, to := range a.Neighbors {
			if err := g.AddRoute(a.Code, to); err != nil {
				return nil, fmt.Errorf("load snapshot: %w", err)
			}
		}
	}
	for airfield, samples := range f.Weather {
		for t, m := range samples {
			g.SetWeather(airfield, t, m)
		}
	}

	return g, nil
}

// Repository serves a snapshot file through the NetworkRepository port.
type Repository struct {
	Path string
}

func NewRepository(path string) *Repository {
	return &Repository{Path: path}
}

func (s *Repository) LoadNetwork(ctx context.Context) (_ *domain.RouteGraph, err error) {
	defer obs.Time(ctx, "network.snapshot.Load")(&err)

	if s.Path == "" {
		return nil, errors.New("load snapshot: path is empty")
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// SaveFile writes g to path, replacing any existing file.
func SaveFile(path string, g *domain.RouteGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if err := Save(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
