package create_appointment

import (
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ProfessionalID int64
	ServiceID      int64
	ClientName     string
	ClientPhone    string
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала, один из свободных слотов
	Notes          *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ProfessionalID  int64
	ServiceID       int64
	ClientName      string
	ClientPhone     string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
