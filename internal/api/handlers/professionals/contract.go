package professionals

import (
	"context"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/professionals/models"
)

type ProfessionalService interface {
	List(ctx context.Context, activeOnly bool) (*models.ProfessionalListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error)
	Create(ctx context.Context, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error)
	Update(ctx context.Context, id int64, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
