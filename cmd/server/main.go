package main

import (
	"context"
	"database/sql"
	"flight-route-service/internal/adapters/cache"
	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/adapters/snapshot"
	"flight-route-service/internal/adapters/weather"
	"flight-route-service/internal/api"
	"flight-route-service/internal/config"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/db"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// main is the application composition root.
// It loads the route network once, wires the route cache and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	config.Load()

	logger, closer, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"), config.Get("LOG_DIR", ""))
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	dbPath := config.Get("DB_PATH", "data/network.db")
	port := config.Get("PORT", "8080")

	cacheSize, err := config.GetInt("ROUTE_CACHE_SIZE", 1024)
	if err != nil {
		return err
	}
	cacheTTL, err := config.GetDuration("ROUTE_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return err
	}

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := context.Background()
	graph, err := loadNetwork(ctx, conn)
	if err != nil {
		return err
	}
	slog.Info("network loaded",
		slog.Int("airports", graph.Size()),
		slog.Int("airfields", len(graph.Airfields())))

	router := api.NewRouter(graph, cache.NewLRURouteCache(cacheSize, cacheTTL))

	// Deadline searches are exhaustive on small networks; the write timeout leaves room for them.
	slog.Info("server listening", slog.String("addr", ":"+port))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}

// loadNetwork prefers a snapshot when SNAPSHOT_PATH is set. Otherwise the
// SQLite store is used, seeded from the CSV inputs on first start.
func loadNetwork(ctx context.Context, conn *sql.DB) (*domain.RouteGraph, error) {
	if path := config.Get("SNAPSHOT_PATH", ""); path != "" {
		if _, err := os.Stat(path); err == nil {
			return snapshot.NewRepository(path).LoadNetwork(ctx)
		}
		slog.Warn("snapshot not found, falling back to database", slog.String("path", path))
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	seeded, err := repositories.IsSeeded(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	if !seeded {
		if err := seedFromCSV(ctx, conn); err != nil {
			return nil, fmt.Errorf("load network: %w", err)
		}
	}

	var repo ports.NetworkRepository = repositories.NewSQLNetworkRepository(conn, repositories.SQLite)
	return repo.LoadNetwork(ctx)
}

func seedFromCSV(ctx context.Context, conn *sql.DB) error {
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

	slog.Info("seeding database from csv", slog.Int("airports", g.Size()), slog.Int("weather", codes.Len()))
	return repositories.SeedNetwork(ctx, conn, repositories.SQLite, g, codes)
}
