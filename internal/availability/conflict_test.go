package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/ptr"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "partial overlap", a: Interval{570, 630}, b: Interval{600, 660}, want: true},
		{name: "contained", a: Interval{600, 630}, b: Interval{540, 720}, want: true},
		{name: "identical", a: Interval{600, 660}, b: Interval{600, 660}, want: true},
		{name: "ends at start", a: Interval{540, 600}, b: Interval{600, 660}, want: false},
		{name: "starts at end", a: Interval{660, 720}, b: Interval{600, 660}, want: false},
		{name: "disjoint", a: Interval{480, 510}, b: Interval{600, 660}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func appointmentAt(id int64, date time.Time, start string, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestNewScanner_Appointments(t *testing.T) {
	appointments := []*domain.Appointment{
		appointmentAt(1, monday, "10:00", 45, domain.StatusConfirmed),
		appointmentAt(2, monday, "12:00", 0, domain.StatusScheduled),
		appointmentAt(3, monday, "14:00", 60, domain.StatusCancelled),
		appointmentAt(4, monday.AddDate(0, 0, 1), "15:00", 60, domain.StatusScheduled),
		appointmentAt(5, monday, "16:00", 30, domain.StatusNoShow),
	}

	s, err := NewScanner(monday, appointments, nil, 90)
	require.NoError(t, err)

	assert.Equal(t, []Commitment{
		{Interval: Interval{600, 645}, Origin: OriginAppointment, SourceID: 1},
		{Interval: Interval{720, 810}, Origin: OriginAppointment, SourceID: 2},
		{Interval: Interval{960, 990}, Origin: OriginAppointment, SourceID: 5},
	}, s.Commitments())

	c, found := s.FirstConflict(Interval{630, 660})
	require.True(t, found)
	assert.Equal(t, int64(1), c.SourceID)

	assert.False(t, s.Conflicts(Interval{645, 720}))
	assert.False(t, s.Conflicts(Interval{840, 900}))
}

func TestNewScanner_MalformedAppointment(t *testing.T) {
	_, err := NewScanner(monday, []*domain.Appointment{
		appointmentAt(7, monday, "ten o'clock", 30, domain.StatusScheduled),
	}, nil, 30)
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestNewScanner_MissingDuration(t *testing.T) {
	_, err := NewScanner(monday, []*domain.Appointment{
		appointmentAt(7, monday, "10:00", 0, domain.StatusScheduled),
	}, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func timePtr(s string) *types.TimeString {
	return ptr.Ptr(types.TimeString(s))
}

func TestBlockCommitment(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)

	tests := []struct {
		name   string
		block  *domain.TimeBlock
		date   time.Time
		want   Interval
		wantOK bool
	}{
		{
			name:   "whole day",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: monday},
			date:   monday,
			want:   Interval{0, 1440},
			wantOK: true,
		},
		{
			name:   "date outside range",
			block:  &domain.TimeBlock{StartDate: tuesday, EndDate: wednesday},
			date:   monday,
			wantOK: false,
		},
		{
			name:   "single day with times",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: monday, StartTime: timePtr("12:00"), EndTime: timePtr("13:30")},
			date:   monday,
			want:   Interval{720, 810},
			wantOK: true,
		},
		{
			name:   "only end time means from start of day",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: monday, EndTime: timePtr("10:00")},
			date:   monday,
			want:   Interval{0, 600},
			wantOK: true,
		},
		{
			name:   "only start time means until end of day",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: monday, StartTime: timePtr("15:00")},
			date:   monday,
			want:   Interval{900, 1440},
			wantOK: true,
		},
		{
			name:   "multi day first date",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: wednesday, StartTime: timePtr("14:00"), EndTime: timePtr("11:00")},
			date:   monday,
			want:   Interval{840, 1440},
			wantOK: true,
		},
		{
			name:   "multi day middle date",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: wednesday, StartTime: timePtr("14:00"), EndTime: timePtr("11:00")},
			date:   tuesday,
			want:   Interval{0, 1440},
			wantOK: true,
		},
		{
			name:   "multi day last date",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: wednesday, StartTime: timePtr("14:00"), EndTime: timePtr("11:00")},
			date:   wednesday,
			want:   Interval{0, 660},
			wantOK: true,
		},
		{
			name:   "multi day ending at midnight takes nothing on last date",
			block:  &domain.TimeBlock{StartDate: monday, EndDate: tuesday, StartTime: timePtr("20:00"), EndTime: timePtr("00:00")},
			date:   tuesday,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok, err := blockCommitment(tt.block, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, c.Interval)
				assert.Equal(t, OriginManualBlock, c.Origin)
			}
		})
	}
}

func TestBlockCommitment_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		block    *domain.TimeBlock
		expected error
	}{
		{
			name:     "range ends before it starts",
			block:    &domain.TimeBlock{StartDate: monday, EndDate: sunday},
			expected: ErrInvalidBlock,
		},
		{
			name:     "single day inverted times",
			block:    &domain.TimeBlock{StartDate: monday, EndDate: monday, StartTime: timePtr("15:00"), EndTime: timePtr("14:00")},
			expected: ErrInvalidBlock,
		},
		{
			name:     "malformed start time",
			block:    &domain.TimeBlock{StartDate: monday, EndDate: monday, StartTime: timePtr("3pm")},
			expected: ErrMalformedTime,
		},
		{
			name:     "malformed end time",
			block:    &domain.TimeBlock{StartDate: monday, EndDate: monday, EndTime: timePtr("25:00")},
			expected: ErrMalformedTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := blockCommitment(tt.block, monday)
			assert.ErrorIs(t, err, tt.expected)

			_, err = NewScanner(monday, nil, []*domain.TimeBlock{tt.block}, 30)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidateBlock(t *testing.T) {
	next := monday.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		block    *domain.TimeBlock
		expected error
	}{
		{name: "whole day", block: &domain.TimeBlock{ID: 1, StartDate: monday, EndDate: monday}},
		{name: "timed", block: &domain.TimeBlock{ID: 2, StartDate: monday, EndDate: monday, StartTime: timePtr("10:00"), EndTime: timePtr("11:00")}},
		{name: "overnight", block: &domain.TimeBlock{ID: 3, StartDate: monday, EndDate: next, StartTime: timePtr("18:00"), EndTime: timePtr("09:00")}},
		{name: "reversed dates", block: &domain.TimeBlock{ID: 4, StartDate: next, EndDate: monday}, expected: ErrInvalidBlock},
		{name: "reversed times", block: &domain.TimeBlock{ID: 5, StartDate: monday, EndDate: monday, StartTime: timePtr("11:00"), EndTime: timePtr("10:00")}, expected: ErrInvalidBlock},
		{name: "malformed end", block: &domain.TimeBlock{ID: 6, StartDate: monday, EndDate: next, EndTime: timePtr("25:00")}, expected: ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlock(tt.block)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
