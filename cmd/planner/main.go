package main

import (
	"context"
	"flag"
	"flight-route-service/internal/adapters/report"
	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/adapters/snapshot"
	"flight-route-service/internal/adapters/weather"
	"flight-route-service/internal/config"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

type options struct {
	airports      string
	directions    string
	weatherCSV    string
	weatherURL    string
	missions      string
	outDir        string
	snapshot      string
	writeSnapshot bool
	noPrune       bool
}

// planner reads the network and a missions file, then writes one result line
// per mission to task1-out.txt (fixed-time) and task2-out.txt (deadline).
func main() {
	config.Load()

	var opts options
	flag.StringVar(&opts.airports, "airports", config.Get("AIRPORTS_CSV", "airports.csv"), "airports CSV file")
	flag.StringVar(&opts.directions, "directions", config.Get("DIRECTIONS_CSV", "directions.csv"), "directions CSV file")
	flag.StringVar(&opts.weatherCSV, "weather", config.Get("WEATHER_CSV", "weather.csv"), "weather CSV file")
	flag.StringVar(&opts.weatherURL, "weather-url", config.Get("WEATHER_URL", ""), "fetch the weather CSV from this URL instead of -weather")
	flag.StringVar(&opts.missions, "missions", config.Get("MISSIONS_FILE", "missions.txt"), "missions file")
	flag.StringVar(&opts.outDir, "out", ".", "output directory")
	flag.StringVar(&opts.snapshot, "snapshot", config.Get("SNAPSHOT_PATH", ""), "network snapshot file; read when present unless -write-snapshot")
	flag.BoolVar(&opts.writeSnapshot, "write-snapshot", false, "load the CSV inputs and write them to -snapshot")
	flag.BoolVar(&opts.noPrune, "no-prune", false, "disable incumbent pruning in the deadline search")
	logLevel := flag.String("log-level", config.Get("LOG_LEVEL", "info"), "debug, info, warn or error")
	flag.Parse()

	logger, closer, err := obs.NewLogger(*logLevel, config.Get("LOG_DIR", ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	err = run(context.Background(), opts)
	closer.Close()
	if err != nil {
		slog.Error("planner failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	g, err := loadNetwork(ctx, opts)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.missions)
	if err != nil {
		return fmt.Errorf("open missions: %w", err)
	}
	plan, err := repositories.ParseMissions(f)
	f.Close()
	if err != nil {
		return err
	}
	slog.Info("missions loaded",
		slog.String("aircraft", plan.Aircraft.String()),
		slog.Int("missions", len(plan.Missions)))

	var searchOpts []services.DeadlineOption
	if opts.noPrune {
		searchOpts = append(searchOpts, services.WithoutPruning())
	}

	outcomes, err := services.RunMissions(ctx, g, plan, searchOpts...)
	if err != nil {
		return err
	}

	if err := writeResults(filepath.Join(opts.outDir, "task1-out.txt"), outcomes, func(o services.MissionOutcome) domain.RouteResult {
		return o.FixedTime
	}); err != nil {
		return err
	}
	if err := writeResults(filepath.Join(opts.outDir, "task2-out.txt"), outcomes, func(o services.MissionOutcome) domain.RouteResult {
		return o.Deadline
	}); err != nil {
		return err
	}

	if n := services.Failed(outcomes); n > 0 {
		return fmt.Errorf("%d of %d missions failed", n, len(outcomes))
	}
	return nil
}

func loadNetwork(ctx context.Context, opts options) (*domain.RouteGraph, error) {
	if opts.snapshot != "" && !opts.writeSnapshot {
		if _, err := os.Stat(opts.snapshot); err == nil {
			return snapshot.NewRepository(opts.snapshot).LoadNetwork(ctx)
		}
	}

	src, err := weather.NewSource(opts.weatherURL, config.Get("WEATHER_TOKEN", ""), opts.weatherCSV)
	if err != nil {
		return nil, err
	}

	var repo ports.NetworkRepository = repositories.NewCSVNetworkRepository(opts.airports, opts.directions, src)
	g, err := repo.LoadNetwork(ctx)
	if err != nil {
		return nil, err
	}

	if opts.writeSnapshot {
		if opts.snapshot == "" {
			return nil, fmt.Errorf("write snapshot: -snapshot is required")
		}
		if err := snapshot.SaveFile(opts.snapshot, g); err != nil {
			return nil, err
		}
		slog.Info("snapshot written", slog.String("path", opts.snapshot))
	}

	return g, nil
}

func writeResults(path string, outcomes []services.MissionOutcome, pick func(services.MissionOutcome) domain.RouteResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	w := report.NewWriter(f)
	for _, o := range outcomes {
		if o.Err != nil {
			err = w.WriteError(o.Err)
		} else {
			err = w.Write(pick(o))
		}
		if err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
