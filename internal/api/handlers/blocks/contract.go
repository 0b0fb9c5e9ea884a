package blocks

import (
	"context"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks/models"
)

type BlockService interface {
	List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error)
	Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
