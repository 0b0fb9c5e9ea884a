package domain

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "agendado"
	StatusConfirmed AppointmentStatus = "confirmado"
	StatusCompleted AppointmentStatus = "concluido"
	StatusCancelled AppointmentStatus = "cancelado"
	StatusNoShow    AppointmentStatus = "nao_compareceu"
)

// IsValid reports whether s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a client's booking of a service with a professional
type Appointment struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64
	ClientName     string
	ClientPhone    string
	Date           time.Time
	StartTime      types.TimeString
	// DurationMinutes is the duration of the booked service at booking time.
	// Zero for legacy records created before the column existed.
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time.
// Only cancelled appointments release the slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change is allowed
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() || next == a.Status {
		return false
	}
	switch a.Status {
	case StatusScheduled:
		return true
	case StatusConfirmed:
		return next != StatusScheduled
	default:
		return false
	}
}

// AppointmentsFilter фильтр для получения записей
type AppointmentsFilter struct {
	ProfessionalID   *int64             // Фильтр по мастеру (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
}

// IsSingleDate returns true if the filter selects exactly one calendar date
func (f AppointmentsFilter) IsSingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil && SameDate(*f.StartDate, *f.EndDate)
}
