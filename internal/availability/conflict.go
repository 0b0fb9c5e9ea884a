package availability

import (
	"fmt"
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Origin источник занятого времени
type Origin string

const (
	OriginAppointment Origin = "appointment"
	OriginManualBlock Origin = "manual_block"
)

// Interval полуоткрытый интервал [Start, End) в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// Overlaps проверяет, есть ли у интервалов общая минута
// Если один интервал заканчивается ровно там, где начинается другой - это НЕ пересечение
//
// Примеры:
// - 09:00-10:00 и 09:30-10:30 → ЕСТЬ пересечение
// - 09:00-10:00 и 10:00-11:00 → НЕТ пересечения (граничат)
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

// Commitment уже занятое время на проверяемую дату
type Commitment struct {
	Interval
	Origin   Origin
	SourceID int64
}

// Scanner проверяет кандидатов на пересечение с занятым временем одной даты
type Scanner struct {
	date        time.Time
	commitments []Commitment
}

// NewScanner собирает занятое время на дату date
//
// Отмененные записи и записи на другие даты пропускаются.
// Для записи без сохраненной длительности берется fallbackDuration.
// Некорректное время возвращается ошибкой, а не пропускается молча.
func NewScanner(date time.Time, appointments []*domain.Appointment, blocks []*domain.TimeBlock, fallbackDuration int) (*Scanner, error) {
	s := &Scanner{
		date:        domain.DateOnly(date),
		commitments: make([]Commitment, 0, len(appointments)+len(blocks)),
	}

	// 1. Активные записи на эту дату
	for _, a := range appointments {
		if a == nil || !a.IsActive() || !domain.SameDate(a.Date, date) {
			continue
		}
		c, err := appointmentCommitment(a, fallbackDuration)
		if err != nil {
			return nil, err
		}
		s.commitments = append(s.commitments, c)
	}

	// 2. Блокировки, проецированные на эту дату
	for _, b := range blocks {
		if b == nil {
			continue
		}
		c, ok, err := blockCommitment(b, s.date)
		if err != nil {
			return nil, err
		}
		if ok {
			s.commitments = append(s.commitments, c)
		}
	}

	return s, nil
}

// FirstConflict возвращает первое занятое время, пересекающееся с candidate
func (s *Scanner) FirstConflict(candidate Interval) (Commitment, bool) {
	for _, c := range s.commitments {
		if c.Overlaps(candidate) {
			return c, true
		}
	}
	return Commitment{}, false
}

// Conflicts проверяет, пересекается ли candidate хоть с чем-то
func (s *Scanner) Conflicts(candidate Interval) bool {
	_, found := s.FirstConflict(candidate)
	return found
}

// Commitments возвращает собранное занятое время
func (s *Scanner) Commitments() []Commitment {
	return s.commitments
}

// appointmentCommitment переводит запись в интервал занятого времени
func appointmentCommitment(a *domain.Appointment, fallbackDuration int) (Commitment, error) {
	start, err := a.StartTime.Minutes()
	if err != nil {
		return Commitment{}, fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, a.ID, err)
	}

	duration := a.DurationMinutes
	if duration <= 0 {
		duration = fallbackDuration
	}
	if duration <= 0 {
		return Commitment{}, fmt.Errorf("%w: appointment id=%d has no duration", ErrInvalidDuration, a.ID)
	}

	return Commitment{
		Interval: Interval{Start: start, End: start + duration},
		Origin:   OriginAppointment,
		SourceID: a.ID,
	}, nil
}

// blockCommitment проецирует блокировку на дату date
// false - в эту дату блокировка не занимает времени
//
// Для многодневной блокировки со временем:
// - в первый день занято с StartTime до конца дня
// - в промежуточные дни занят весь день
// - в последний день занято с начала дня до EndTime
func blockCommitment(b *domain.TimeBlock, date time.Time) (Commitment, bool, error) {
	// 1. Проверяем порядок дат и попадание даты в диапазон
	first := domain.DateOnly(b.StartDate)
	last := domain.DateOnly(b.EndDate)
	if last.Before(first) {
		return Commitment{}, false, fmt.Errorf("%w: block id=%d ends before it starts", ErrInvalidBlock, b.ID)
	}
	if !b.CoversDate(date) {
		return Commitment{}, false, nil
	}

	// 2. Блокировка без времени занимает весь день
	whole := Interval{Start: 0, End: types.MinutesPerDay}
	if !b.HasTimeRange() {
		return Commitment{Interval: whole, Origin: OriginManualBlock, SourceID: b.ID}, true, nil
	}

	// 3. Парсим время; отсутствующая граница означает начало или конец дня
	startMin, err := optionalMinutes(b.StartTime, 0)
	if err != nil {
		return Commitment{}, false, fmt.Errorf("%w: block id=%d start: %v", ErrMalformedTime, b.ID, err)
	}
	endMin, err := optionalMinutes(b.EndTime, types.MinutesPerDay)
	if err != nil {
		return Commitment{}, false, fmt.Errorf("%w: block id=%d end: %v", ErrMalformedTime, b.ID, err)
	}

	// 4. Обрезаем интервал в первый и последний день диапазона
	isFirst := domain.SameDate(date, first)
	isLast := domain.SameDate(date, last)

	interval := whole
	if isFirst {
		interval.Start = startMin
	}
	if isLast {
		interval.End = endMin
	}

	if interval.Start >= interval.End {
		if isFirst && isLast {
			return Commitment{}, false, fmt.Errorf("%w: block id=%d start is not before end", ErrInvalidBlock, b.ID)
		}
		// Многодневная блокировка, которая заканчивается в 00:00 последнего дня
		return Commitment{}, false, nil
	}

	return Commitment{Interval: interval, Origin: OriginManualBlock, SourceID: b.ID}, true, nil
}

// optionalMinutes возвращает def, если время не задано
func optionalMinutes(t *types.TimeString, def int) (int, error) {
	if t == nil || *t == "" {
		return def, nil
	}
	return t.Minutes()
}

// ValidateBlock проверяет блокировку так же, как NewScanner на покрытых датах
// Для однодневной блокировки начало должно быть раньше конца
func ValidateBlock(b *domain.TimeBlock) error {
	_, _, err := blockCommitment(b, b.StartDate)
	return err
}
