package domain

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// TimeBlock is a manual administrative block of time.
//
// Without StartTime and EndTime every date in [StartDate, EndDate] is blocked
// entirely. With times the block is one continuous range from
// StartDate StartTime to EndDate EndTime; a missing StartTime means the start
// of the first day and a missing EndTime means the end of the last day.
// A nil ProfessionalID blocks the whole salon.
type TimeBlock struct {
	ID             int64
	ProfessionalID *int64
	StartDate      time.Time
	EndDate        time.Time
	StartTime      *types.TimeString
	EndTime        *types.TimeString
	Reason         *string
	CreatedAt      time.Time
}

// HasTimeRange returns true if the block carries at least one time bound
func (b *TimeBlock) HasTimeRange() bool {
	return (b.StartTime != nil && *b.StartTime != "") || (b.EndTime != nil && *b.EndTime != "")
}

// CoversDate returns true if date falls within [StartDate, EndDate]
func (b *TimeBlock) CoversDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// IsSalonWide returns true if the block applies to every professional
func (b *TimeBlock) IsSalonWide() bool {
	return b.ProfessionalID == nil
}

// BlocksFilter фильтр для получения блокировок
type BlocksFilter struct {
	ProfessionalID *int64     // Блокировки мастера + общие блокировки салона
	Date           *time.Time // Блокировки, которые покрывают эту дату
}
