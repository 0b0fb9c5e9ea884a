package availability

import (
	"fmt"
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Request входные данные для расчета слотов на (дату, услугу, мастера)
type Request struct {
	Date            time.Time
	DurationMinutes int
	Profile         WorkingProfile
	Appointments    []*domain.Appointment
	Blocks          []*domain.TimeBlock
}

// GenerateSlots возвращает свободные времена начала по возрастанию
// Кандидаты идут от начала рабочего окна с шагом domain.SlotStepMinutes
// Кандидат остается, только если он заканчивается внутри окна и ни с чем не пересекается
//
// В нерабочий день возвращается пустой список, остальные данные запроса не проверяются
func GenerateSlots(req Request) ([]types.TimeString, error) {
	// Шаг 1: Рабочее окно мастера на эту дату
	window, ok := ResolveWorkingDay(req.Profile, req.Date)
	if !ok {
		return []types.TimeString{}, nil
	}

	// Шаг 2: Длительность услуги должна быть положительной
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, req.DurationMinutes)
	}

	// Шаг 3: Собираем занятое время (записи и блокировки)
	scanner, err := NewScanner(req.Date, req.Appointments, req.Blocks, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	// Шаг 4: Перебираем кандидатов и отбрасываем пересекающиеся с занятым временем
	slots := make([]types.TimeString, 0)
	for start := window.Start; start+req.DurationMinutes <= window.End; start += domain.SlotStepMinutes {
		candidate := Interval{Start: start, End: start + req.DurationMinutes}
		if scanner.Conflicts(candidate) {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// IsCandidate проверяет, рассматривал бы GenerateSlots время start как кандидата
// Пересечения с занятым временем здесь не проверяются
func IsCandidate(window Window, start, duration int) bool {
	if duration <= 0 || start < window.Start {
		return false
	}
	if (start-window.Start)%domain.SlotStepMinutes != 0 {
		return false
	}
	return start+duration <= window.End
}
