package get_available_slots

import (
	"context"
	"time"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// CatalogReader интерфейс справочника мастеров и услуг
type CatalogReader interface {
	GetProfessional(ctx context.Context, id int64) (*domain.Professional, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	// ListForDate возвращает блокировки мастера и общие блокировки салона на дату
	ListForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.TimeBlock, error)
}

// Metrics интерфейс метрик расчета слотов
type Metrics interface {
	ObserveSlots(count int, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
