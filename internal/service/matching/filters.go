package matching

import (
	"context"
	"fmt"

	"skillswap/pkg/timeutil"
)

const (
	minProficiencyLevel = 1
	maxProficiencyLevel = 5
)

// Filters narrow the candidate pool before it reaches the engine. They are
// request-level criteria and never change how a candidate is scored.
type Filters struct {
	MinCompatibility *float64
	MinProficiency   int
	MaxProficiency   int
	Weekday          *int
	StartTime        string
	EndTime          string
}

// FiltersFromRequest validates the query-string filters of a match request.
func FiltersFromRequest(req FindMatchesRequest) (Filters, error) {
	f := Filters{
		MinCompatibility: req.MinCompatibility,
		MinProficiency:   req.MinProficiency,
		MaxProficiency:   req.MaxProficiency,
		Weekday:          req.Weekday,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	}

	if f.MinProficiency != 0 && f.MaxProficiency != 0 && f.MinProficiency > f.MaxProficiency {
		return Filters{}, fmt.Errorf("%w: minProficiency %d exceeds maxProficiency %d",
			ErrInvalidFilter, f.MinProficiency, f.MaxProficiency)
	}

	if (f.StartTime == "") != (f.EndTime == "") {
		return Filters{}, fmt.Errorf("%w: startTime and endTime must be given together", ErrInvalidFilter)
	}
	if f.StartTime != "" {
		if _, _, ok := timeutil.Interval(f.StartTime, f.EndTime); !ok {
			return Filters{}, fmt.Errorf("%w: time window %s-%s is not a valid range",
				ErrInvalidFilter, f.StartTime, f.EndTime)
		}
	}

	return f, nil
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.MinCompatibility == nil && f.MinProficiency == 0 && f.MaxProficiency == 0 &&
		f.Weekday == nil && f.StartTime == ""
}

// Apply returns the candidates that pass every filter, in input order.
// The compatibility threshold is evaluated with scorer against requester.
// It stops early with ctx's error once ctx is done.
func (f Filters) Apply(ctx context.Context, scorer Matcher, requester *Profile, candidates []*Profile) ([]*Profile, error) {
	if f.IsZero() {
		return candidates, nil
	}

	kept := make([]*Profile, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !f.matchesProficiency(c) || !f.matchesSchedule(c) {
			continue
		}
		if f.MinCompatibility != nil && scorer.ComputeScore(requester, c).TotalScore < *f.MinCompatibility {
			continue
		}
		kept = append(kept, c)
	}
	return kept, nil
}

// matchesProficiency passes candidates offering at least one skill in range.
func (f Filters) matchesProficiency(c *Profile) bool {
	if f.MinProficiency == 0 && f.MaxProficiency == 0 {
		return true
	}

	lo, hi := minProficiencyLevel, maxProficiencyLevel
	if f.MinProficiency != 0 {
		lo = f.MinProficiency
	}
	if f.MaxProficiency != 0 {
		hi = f.MaxProficiency
	}

	for _, s := range c.Skills {
		if s.Proficiency >= lo && s.Proficiency <= hi {
			return true
		}
	}
	return false
}

// matchesSchedule passes candidates with a slot on the weekday (any day when
// unset) that overlaps the time window (any time when unset).
func (f Filters) matchesSchedule(c *Profile) bool {
	if f.Weekday == nil && f.StartTime == "" {
		return true
	}

	for _, slot := range c.Availability {
		if f.Weekday != nil && slot.Weekday != *f.Weekday {
			continue
		}
		if f.StartTime == "" {
			return true
		}
		window := AvailabilitySlot{Weekday: slot.Weekday, StartTime: f.StartTime, EndTime: f.EndTime}
		if SlotOverlap(slot, window) > 0 {
			return true
		}
	}
	return false
}
