package availability

import (
	"fmt"
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// WorkingProfile проверенный рабочий профиль мастера
// Нулевое значение не работает ни в один день
type WorkingProfile struct {
	workDays [7]bool
	dayStart int
	dayEnd   int
}

// Window рабочие границы одного дня в минутах от полуночи
type Window struct {
	Start int
	End   int
}

// NewWorkingProfile парсит и проверяет сырые данные профиля
// Дни недели нормализуются через domain.ParseWeekday: "segunda", "Monday" и "1" - один и тот же день
func NewWorkingProfile(workDays []string, dayStart, dayEnd string) (WorkingProfile, error) {
	var p WorkingProfile

	// 1. Рабочие дни недели
	for _, raw := range workDays {
		d, err := domain.ParseWeekday(raw)
		if err != nil {
			return WorkingProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		p.workDays[d] = true
	}

	// 2. Начало и конец рабочего дня
	start, err := types.TimeString(dayStart).Minutes()
	if err != nil {
		return WorkingProfile{}, fmt.Errorf("%w: day start: %v", ErrMalformedTime, err)
	}
	end, err := types.TimeString(dayEnd).Minutes()
	if err != nil {
		return WorkingProfile{}, fmt.Errorf("%w: day end: %v", ErrMalformedTime, err)
	}
	// 3. Пустой или перевернутый рабочий день не допускается
	if start >= end {
		return WorkingProfile{}, fmt.Errorf("%w: day start %s is not before day end %s", ErrInvalidProfile, dayStart, dayEnd)
	}

	p.dayStart = start
	p.dayEnd = end
	return p, nil
}

// ProfileFromProfessional строит профиль из сохраненного мастера
func ProfileFromProfessional(p *domain.Professional) (WorkingProfile, error) {
	return NewWorkingProfile(p.WorkDays, p.DayStart.String(), p.DayEnd.String())
}

// WorksOn проверяет, рабочий ли день недели d
func (p WorkingProfile) WorksOn(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday && p.workDays[d]
}

// Window возвращает границы рабочего дня, общие для всех рабочих дней
func (p WorkingProfile) Window() Window {
	return Window{Start: p.dayStart, End: p.dayEnd}
}

// ResolveWorkingDay возвращает рабочее окно на дату
// false - мастер в этот день недели не работает
func ResolveWorkingDay(p WorkingProfile, date time.Time) (Window, bool) {
	if !p.WorksOn(date.Weekday()) {
		return Window{}, false
	}
	return p.Window(), true
}
