package domain

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Professional is a salon staff member who performs services.
// WorkDays holds canonical weekday keys (see WeekdayKey).
type Professional struct {
	ID        int64
	Name      string
	Phone     *string
	WorkDays  []string
	DayStart  types.TimeString
	DayEnd    types.TimeString
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
