package main

import (
	"context"
	"database/sql"
	"errors"
	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/adapters/weather"
	"flight-route-service/internal/config"
	"flight-route-service/internal/platform/db"
	"flight-route-service/internal/platform/obs"
	"log/slog"
	"os"
)

// dbtool initializes the Postgres network schema and seeds it from the CSV inputs.
func main() {
	config.Load()

	logger, closer, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"), config.Get("LOG_DIR", ""))
	if err != nil {
		slog.Error("logger setup failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		slog.Error("dbtool failed", slog.Any("err", err))
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	return initAndSeed(ctx, conn)
}

func initAndSeed(ctx context.Context, conn *sql.DB) error {
	slog.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	slog.Info("schema ready")

	src, err := weather.NewSource(
		config.Get("WEATHER_URL", ""),
		config.Get("WEATHER_TOKEN", ""),
		config.Get("WEATHER_CSV", "data/weather.csv"),
	)
	if err != nil {
		return err
	}

	csvRepo := repositories.NewCSVNetworkRepository(
		config.Get("AIRPORTS_CSV", "data/airports.csv"),
		config.Get("DIRECTIONS_CSV", "data/directions.csv"),
		src,
	)
	g, codes, err := csvRepo.LoadSeed(ctx)
	if err != nil {
		return err
	}

	slog.Info("seeding database", slog.Int("airports", g.Size()), slog.Int("weather", codes.Len()))
	if err := repositories.SeedNetwork(ctx, conn, repositories.Postgres, g, codes); err != nil {
		return err
	}
	slog.Info("seeding complete")

	return nil
}
