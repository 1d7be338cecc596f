package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"fmt"
)

// SQL-backed implementation of the NetworkRepository port. The same
// queries serve SQLite and Postgres.
type SQLNetworkRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLNetworkRepository(db *sql.DB, d Dialect) *SQLNetworkRepository {
	return &SQLNetworkRepository{DB: db, Dialect: d}
}

// Build the route graph from the airports, directions and weather tables.
func (s *SQLNetworkRepository) LoadNetwork(ctx context.Context) (_ *domain.RouteGraph, err error) {
	defer obs.Time(ctx, "network."+s.Dialect.Name+".Load")(&err)

	if s.DB == nil {
		return nil, errors.New("sql network repository: DB is nil")
	}

	g := domain.NewRouteGraph()

	if err := s.loadAirports(ctx, g); err != nil {
		return nil, err
	}
	if err := s.loadDirections(ctx, g); err != nil {
		return nil, err
	}
	if err := s.loadWeather(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *SQLNetworkRepository) loadAirports(ctx context.Context, g *domain.RouteGraph) error {
	query := `
	SELECT
		code,
		airfield,
		lat,
		lon,
		parking_cost
	FROM airports
	ORDER BY code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load airports: query airports table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.AirfieldName, &a.Lat, &a.Lon, &a.ParkingCost); err != nil {
			return fmt.Errorf("load airports: scan row: %w", err)
		}
		g.AddAirport(a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load airports: row iteration: %w", err)
	}

	return nil
}

func (s *SQLNetworkRepository) loadDirections(ctx context.Context, g *domain.RouteGraph) error {
	query := `
	SELECT
		origin,
		destination
	FROM directions
	ORDER BY origin, position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load directions: query directions table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var from, to string
		if err := rows.Scan(&from, &to); err != nil {
			return fmt.Errorf("load directions: scan row: %w", err)
		}
		if err := g.AddRoute(from, to); err != nil {
			return fmt.Errorf("load directions: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load directions: row iteration: %w", err)
	}

	return nil
}

func (s *SQLNetworkRepository) loadWeather(ctx context.Context, g *domain.RouteGraph) error {
	query := `
	SELECT
		airfield,
		at_seconds,
		code
	FROM weather;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load weather: query weather table: %w", err)
	}
	defer rows.Close()

	codes := WeatherCodes{}
	for rows.Next() {
		var airfield string
		var ts int64
		var code int
		if err := rows.Scan(&airfield, &ts, &code); err != nil {
			return fmt.Errorf("load weather: scan row: %w", err)
		}
		codes.Set(airfield, ts, code)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load weather: row iteration: %w", err)
	}

	if err := codes.Apply(g); err != nil {
		return fmt.Errorf("load weather: %w", err)
	}
	return nil
}
