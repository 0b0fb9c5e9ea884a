package professionals

import (
	"context"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Professional, error)
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
	Update(ctx context.Context, p *domain.Professional) (*domain.Professional, error)
}

// CacheInvalidator сбрасывает закешированного мастера после изменения
type CacheInvalidator interface {
	InvalidateProfessional(id int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
