package schedule

import (
	"fmt"
	"time"

	"barbershop-booking/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

var (
	ErrInvalidTimeOfDay = errs.Validation("time of day must be HH:MM between 00:00 and 23:59")
	ErrInvalidInterval  = errs.Validation("slot interval must be positive")
	ErrOpensAfterCloses = errs.Validation("opening time must be before closing time")
)

// TimeOfDay is a wall-clock time with minute precision, stored as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On combines the time of day with the calendar date of d, in UTC.
func (t TimeOfDay) On(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// Preferences are per-tenant notification switches stored alongside the hours.
type Preferences struct {
	Reminder24h          bool
	Reminder1h           bool
	AutoConfirm          bool
	NotificationsEnabled bool
}

func DefaultPreferences() Preferences {
	return Preferences{Reminder24h: true, Reminder1h: true, AutoConfirm: true, NotificationsEnabled: true}
}

// Policy is a tenant's operating hours: [opensAt, closesAt) stepped by interval.
type Policy struct {
	opensAt         TimeOfDay
	closesAt        TimeOfDay
	intervalMinutes int
	preferences     Preferences
}

func NewPolicy(opensAt, closesAt TimeOfDay, intervalMinutes int, prefs Preferences) (Policy, error) {
	if opensAt < 0 || opensAt >= minutesPerDay || closesAt < 0 || closesAt >= minutesPerDay {
		return Policy{}, ErrInvalidTimeOfDay
	}
	if intervalMinutes <= 0 {
		return Policy{}, ErrInvalidInterval
	}
	if opensAt >= closesAt {
		return Policy{}, ErrOpensAfterCloses
	}
	return Policy{
		opensAt:         opensAt,
		closesAt:        closesAt,
		intervalMinutes: intervalMinutes,
		preferences:     prefs,
	}, nil
}

// DefaultPolicy is 08:00-18:00 every 30 minutes, used for new tenants and as the
// fallback when a tenant has no stored policy.
func DefaultPolicy() Policy {
	return Policy{
		opensAt:         TimeOfDay(8 * 60),
		closesAt:        TimeOfDay(18 * 60),
		intervalMinutes: 30,
		preferences:     DefaultPreferences(),
	}
}

func (p Policy) OpensAt() TimeOfDay       { return p.opensAt }
func (p Policy) ClosesAt() TimeOfDay      { return p.closesAt }
func (p Policy) IntervalMinutes() int     { return p.intervalMinutes }
func (p Policy) Preferences() Preferences { return p.preferences }

func (p Policy) Interval() time.Duration {
	return time.Duration(p.intervalMinutes) * time.Minute
}

// SlotsPerDay is the number of slot starts in a full day, ignoring "now".
func (p Policy) SlotsPerDay() int {
	span := int(p.closesAt - p.opensAt)
	return (span + p.intervalMinutes - 1) / p.intervalMinutes
}
