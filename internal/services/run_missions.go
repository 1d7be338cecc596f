package services

import (
	"context"
	"errors"
	"flight-route-service/internal/domain"
	"fmt"
	"log/slog"
)

// Results of both searches for one mission. Err is set, and both results are
// "no solution", when the mission itself could not be planned.
type MissionOutcome struct {
	Mission   domain.Mission
	FixedTime domain.RouteResult
	Deadline  domain.RouteResult
	Err       error
}

// RunMissions plans every mission of plan against g, one after another:
// the fixed-time search at the mission start, then the deadline search with
// the plan's aircraft. A mission that cannot be planned records its error and
// the run moves on; only cancellation of ctx stops it early.
func RunMissions(ctx context.Context, g *domain.RouteGraph, plan domain.MissionPlan, opts ...DeadlineOption) ([]MissionOutcome, error) {
	outcomes := make([]MissionOutcome, 0, len(plan.Missions))

	for i, m := range plan.Missions {
		out, err := runMission(ctx, g, plan.Aircraft, m, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return outcomes, fmt.Errorf("run missions: mission %d: %w", i+1, err)
			}
			slog.WarnContext(ctx, "mission failed",
				slog.Int("mission", i+1),
				slog.String("origin", m.Origin),
				slog.String("destination", m.Destination),
				slog.Any("err", err))
			out = MissionOutcome{
				Mission:   m,
				FixedTime: domain.NoRoute(),
				Deadline:  domain.NoRoute(),
				Err:       fmt.Errorf("mission %d: %w", i+1, err),
			}
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

func runMission(ctx context.Context, g *domain.RouteGraph, aircraft domain.AircraftModel, m domain.Mission, opts []DeadlineOption) (MissionOutcome, error) {
	fixed, err := FixedTimeRoute(ctx, g, FixedTimeRequest{
		Origin:      m.Origin,
		Destination: m.Destination,
		At:          m.Start,
	})
	if err != nil {
		return MissionOutcome{}, err
	}

	deadline, err := DeadlineRoute(ctx, g, DeadlineRequest{
		Origin:      m.Origin,
		Destination: m.Destination,
		Start:       m.Start,
		Deadline:    m.Deadline,
		Aircraft:    aircraft,
	}, opts...)
	if err != nil {
		return MissionOutcome{}, err
	}

	return MissionOutcome{Mission: m, FixedTime: fixed, Deadline: deadline}, nil
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []MissionOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
