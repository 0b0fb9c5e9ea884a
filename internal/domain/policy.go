package domain

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// BookingPolicy salon-wide rules applied on top of the availability engine
type BookingPolicy struct {
	// MinBookingNoticeMinutes minimum lead time for same-day bookings
	MinBookingNoticeMinutes int
	// AdvanceBookingDays how far ahead clients may book, 0 = unlimited
	AdvanceBookingDays int
	// Location salon time zone used to determine "today"
	Location *time.Location
}

// HasAdvanceBookingLimit returns true if there's a limit on how far ahead bookings can be made
func (p BookingPolicy) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// Today returns the current salon date for now
func (p BookingPolicy) Today(now time.Time) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// EarliestStart returns the first bookable minute of date for a request made
// at now. Future dates start at 0, past dates at types.MinutesPerDay (nothing
// bookable) and today at the current salon time plus the notice period.
func (p BookingPolicy) EarliestStart(date, now time.Time) int {
	today := p.Today(now)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case day.After(today):
		return 0
	case day.Before(today):
		return types.MinutesPerDay
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	earliest := local.Hour()*60 + local.Minute() + p.MinBookingNoticeMinutes
	if local.Second() > 0 || local.Nanosecond() > 0 {
		earliest++
	}
	if earliest > types.MinutesPerDay {
		return types.MinutesPerDay
	}
	return earliest
}
