package schedule

import (
	"slices"
	"time"
)

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GenerateCandidates lists slot starts on date's calendar day, from opening up to
// but excluding closing, keeping only instants strictly after now.
func GenerateCandidates(p Policy, date, now time.Time) []time.Time {
	start := p.opensAt.On(date)
	end := p.closesAt.On(date)
	step := p.Interval()

	out := make([]time.Time, 0, p.SlotsPerDay())
	for t := start; t.Before(end); t = t.Add(step) {
		if t.After(now) {
			out = append(out, t)
		}
	}
	return out
}

// FilterAvailable drops candidates that exactly match a confirmed booking instant.
// Booking duration is not considered: a long service does not block later slots.
// The result never aliases candidates.
func FilterAvailable(candidates, booked []time.Time) []time.Time {
	if len(booked) == 0 {
		return slices.Clone(candidates)
	}
	taken := make(map[int64]struct{}, len(booked))
	for _, b := range booked {
		taken[b.UnixNano()] = struct{}{}
	}

	out := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := taken[c.UnixNano()]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// BookedLookup returns the confirmed instants on one calendar day.
type BookedLookup func(day time.Time) ([]time.Time, error)

// NextAvailable scans forward day by day, starting at from, and returns the first
// free slot not earlier than from. It gives up after horizonDays days.
func NextAvailable(p Policy, from, now time.Time, horizonDays int, booked BookedLookup) (time.Time, bool, error) {
	if horizonDays <= 0 {
		horizonDays = 1
	}
	floor := now
	if from.After(now) {
		// slots equal to from are acceptable, so step back just below it
		floor = from.Add(-time.Nanosecond)
	}

	day := Day(from)
	for i := 0; i < horizonDays; i++ {
		candidates := GenerateCandidates(p, day, floor)
		if len(candidates) > 0 {
			taken, err := booked(day)
			if err != nil {
				return time.Time{}, false, err
			}
			if free := FilterAvailable(candidates, taken); len(free) > 0 {
				return free[0], true, nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, false, nil
}
