package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/availability"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Snapshot состояние агенды мастера на одну дату, выгруженное для разбора обращения
type Snapshot struct {
	Date            string              `json:"date"`
	DurationMinutes int                 `json:"durationMinutes"`
	Professional    ProfessionalProfile `json:"professional"`
	Appointments    []AppointmentEntry  `json:"appointments"`
	Blocks          []BlockEntry        `json:"blocks"`
}

type ProfessionalProfile struct {
	WorkDays []string `json:"workDays"`
	DayStart string   `json:"dayStart"`
	DayEnd   string   `json:"dayEnd"`
}

// AppointmentEntry запись на дату снимка
// durationMinutes = 0 означает старую запись без длительности
type AppointmentEntry struct {
	ID              int64  `json:"id"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

type BlockEntry struct {
	ID        int64   `json:"id"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ReadSnapshot декодирует снимок из JSON
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// ToRequest переводит снимок в запрос к генератору слотов
func (s *Snapshot) ToRequest() (availability.Request, error) {
	date, err := domain.ParseDate(s.Date)
	if err != nil {
		return availability.Request{}, fmt.Errorf("date: %w", err)
	}

	profile, err := availability.NewWorkingProfile(s.Professional.WorkDays, s.Professional.DayStart, s.Professional.DayEnd)
	if err != nil {
		return availability.Request{}, fmt.Errorf("professional: %w", err)
	}

	appointments := make([]*domain.Appointment, 0, len(s.Appointments))
	for _, a := range s.Appointments {
		status := domain.AppointmentStatus(a.Status)
		if status == "" {
			status = domain.StatusScheduled
		}
		if !status.IsValid() {
			return availability.Request{}, fmt.Errorf("appointment id=%d: unknown status %q", a.ID, a.Status)
		}
		appointments = append(appointments, &domain.Appointment{
			ID:              a.ID,
			Date:            date,
			StartTime:       types.TimeString(a.StartTime),
			DurationMinutes: a.DurationMinutes,
			Status:          status,
		})
	}

	blocks := make([]*domain.TimeBlock, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		block, err := b.toDomain()
		if err != nil {
			return availability.Request{}, fmt.Errorf("block id=%d: %w", b.ID, err)
		}
		blocks = append(blocks, block)
	}

	return availability.Request{
		Date:            date,
		DurationMinutes: s.DurationMinutes,
		Profile:         profile,
		Appointments:    appointments,
		Blocks:          blocks,
	}, nil
}

func (b BlockEntry) toDomain() (*domain.TimeBlock, error) {
	startDate, err := domain.ParseDate(b.StartDate)
	if err != nil {
		return nil, err
	}

	endDate := startDate
	if b.EndDate != nil {
		if endDate, err = domain.ParseDate(*b.EndDate); err != nil {
			return nil, err
		}
	}

	block := &domain.TimeBlock{ID: b.ID, StartDate: startDate, EndDate: endDate}
	if b.StartTime != nil {
		t := types.TimeString(*b.StartTime)
		block.StartTime = &t
	}
	if b.EndTime != nil {
		t := types.TimeString(*b.EndTime)
		block.EndTime = &t
	}
	return block, nil
}
