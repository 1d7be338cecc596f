package repositories

import (
	"bufio"
	"flight-route-service/internal/domain"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMissions reads a mission file: the aircraft model name on the first
// line, then one "origin destination start deadline" mission per line.
// Blank lines are ignored.
func ParseMissions(r io.Reader) (domain.MissionPlan, error) {
	var plan domain.MissionPlan

	sc := bufio.NewScanner(r)
	line := 0
	header := false

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		if !header {
			m, err := domain.ParseAircraftModel(text)
			if err != nil {
				return plan, fmt.Errorf("parse missions: line %d: %w", line, err)
			}
			plan.Aircraft = m
			header = true
			continue
		}

		m, err := parseMission(text)
		if err != nil {
			return plan, fmt.Errorf("parse missions: line %d: %w", line, err)
		}
		plan.Missions = append(plan.Missions, m)
	}
	if err := sc.Err(); err != nil {
		return plan, fmt.Errorf("parse missions: read: %w", err)
	}
	if !header {
		return plan, fmt.Errorf("parse missions: missing aircraft model: %w", domain.ErrMalformedMission)
	}

	return plan, nil
}

func parseMission(text string) (domain.Mission, error) {
	f := strings.Fields(text)
	if len(f) != 4 {
		return domain.Mission{}, fmt.Errorf("want 4 fields, got %d in %q: %w", len(f), text, domain.ErrMalformedMission)
	}

	start, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("start time %q: %w", f[2], domain.ErrMalformedMission)
	}
	deadline, err := strconv.ParseInt(f[3], 10, 64)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("deadline %q: %w", f[3], domain.ErrMalformedMission)
	}

	return domain.Mission{Origin: f[0], Destination: f[1], Start: start, Deadline: deadline}, nil
}
