package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-route-service/internal/domain"
	"fmt"
)

// Dialect captures the differences between the SQL engines the network
// store runs on.
type Dialect struct {
	Name string
	// Bind parameter for the i-th (1-based) argument.
	Placeholder func(i int) string
}

var (
	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
	}
)

// Initialize the network schema. The statements are portable between
// SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAirportsQuery := `
	CREATE TABLE IF NOT EXISTS airports (
		code TEXT PRIMARY KEY,
		airfield TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		parking_cost DOUBLE PRECISION NOT NULL
	);
	`

	createDirectionsQuery := `
	CREATE TABLE IF NOT EXISTS directions (
		position INTEGER NOT NULL,
		origin TEXT NOT NULL REFERENCES airports(code),
		destination TEXT NOT NULL REFERENCES airports(code),
		PRIMARY KEY (origin, position)
	);
	`

	createWeatherQuery := `
	CREATE TABLE IF NOT EXISTS weather (
		airfield TEXT NOT NULL,
		at_seconds BIGINT NOT NULL,
		code INTEGER NOT NULL CHECK (code BETWEEN 0 AND 31),
		PRIMARY KEY (airfield, at_seconds)
	);
	`

	statements := []string{
		createAirportsQuery,
		createDirectionsQuery,
		createWeatherQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// IsSeeded reports whether the airports table holds any rows.
func IsSeeded(ctx context.Context, db *sql.DB) (bool, error) {
	if db == nil {
		return false, errors.New("is seeded: DB is nil")
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM airports;").Scan(&n); err != nil {
		return false, fmt.Errorf("is seeded: count airports: %w", err)
	}
	return n > 0, nil
}

// Replace the stored network with the given airports, routes and weather.
func SeedNetwork(ctx context.Context, db *sql.DB, d Dialect, g *domain.RouteGraph, codes WeatherCodes) error {
	if db == nil {
		return errors.New("seed network: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"directions", "airports", "weather"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed network: clear %s: %w", table, err)
		}
	}

	p := d.Placeholder
	insertAirport, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO airports (code, airfield, lat, lon, parking_cost)
	VALUES (%s, %s, %s, %s, %s);
	`, p(1), p(2), p(3), p(4), p(5)))
	if err != nil {
		return fmt.Errorf("seed network: prepare airports: %w", err)
	}
	defer insertAirport.Close()

	insertDirection, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO directions (position, origin, destination)
	VALUES (%s, %s, %s);
	`, p(1), p(2), p(3)))
	if err != nil {
		return fmt.Errorf("seed network: prepare directions: %w", err)
	}
	defer insertDirection.Close()

	insertWeather, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO weather (airfield, at_seconds, code)
	VALUES (%s, %s, %s);
	`, p(1), p(2), p(3)))
	if err != nil {
		return fmt.Errorf("seed network: prepare weather: %w", err)
	}
	defer insertWeather.Close()

	airports := g.Airports()
	for _, a := range airports {
		if _, err := insertAirport.ExecContext(ctx, a.Code, a.AirfieldName, a.Lat, a.Lon, a.ParkingCost); err != nil {
			return fmt.Errorf("seed network: insert airport %q: %w", a.Code, err)
		}
	}
	for _, a := range airports {
		for i, to := range a.Neighbors {
			if _, err := insertDirection.ExecContext(ctx, i, a.Code, to); err != nil {
				return fmt.Errorf("seed network: insert direction %s -> %s: %w", a.Code, to, err)
			}
		}
	}
	for airfield, samples := range codes {
		for ts, code := range samples {
			if _, err := insertWeather.ExecContext(ctx, airfield, ts, code); err != nil {
				return fmt.Errorf("seed network: insert weather %s@%d: %w", airfield, ts, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}
