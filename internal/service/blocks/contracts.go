package blocks

import (
	"context"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	ListByFilter(ctx context.Context, filter domain.BlocksFilter) ([]*domain.TimeBlock, error)
	Create(ctx context.Context, b *domain.TimeBlock) (*domain.TimeBlock, error)
	Delete(ctx context.Context, id int64) error
}

// ProfessionalReader интерфейс для проверки существования мастера
type ProfessionalReader interface {
	GetProfessional(ctx context.Context, id int64) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
