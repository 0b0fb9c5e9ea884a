package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/availability"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	blockRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/block"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks/models"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Service сервис ручных блокировок времени (отпуск, обед, закрытие салона)
type Service struct {
	repo          BlockRepository
	professionals ProfessionalReader
	logger        Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo BlockRepository, professionals ProfessionalReader, logger Logger) *Service {
	return &Service{
		repo:          repo,
		professionals: professionals,
		logger:        logger,
	}
}

// List получает блокировки
// Фильтр по мастеру включает общие блокировки салона
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	blocks, err := s.repo.ListByFilter(ctx, domain.BlocksFilter{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// Create создает блокировку
// Интервал проверяется теми же правилами, что применяются при расчете слотов,
// чтобы некорректная блокировка не ломала расчет доступности
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	block, err := toDomainBlock(req)
	if err != nil {
		s.logger.Warn("Create: invalid block: %v", err)
		return nil, err
	}

	if block.ProfessionalID != nil {
		if _, err := s.professionals.GetProfessional(ctx, *block.ProfessionalID); err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				s.logger.Warn("Create: professional id=%d not found", *block.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			s.logger.Error("Create: failed to get professional id=%d: %v", *block.ProfessionalID, err)
			return nil, fmt.Errorf("%w: Create - failed to get professional: %v", ErrInternal, err)
		}
	}

	if err := availability.ValidateBlock(block); err != nil {
		s.logger.Warn("Create: invalid block range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	created, err := s.repo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%d (%s - %s)", created.ID,
		created.StartDate.Format(domain.DateFormat), created.EndDate.Format(domain.DateFormat))
	return models.FromDomainBlock(created), nil
}

// Delete удаляет блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%d", id)
	return nil
}

func toDomainBlock(req *models.CreateBlockRequest) (*domain.TimeBlock, error) {
	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, req.StartDate)
	}

	endDate := startDate
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err = domain.ParseDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
	}

	startTime, err := optionalTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := optionalTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	return &domain.TimeBlock{
		ProfessionalID: req.ProfessionalID,
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Reason:         req.Reason,
	}, nil
}

func optionalTime(s *string) (*types.TimeString, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
