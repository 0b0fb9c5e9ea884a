package professionals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/availability"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/professionals/models"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// Service сервис для управления мастерами и их рабочим графиком
type Service struct {
	repo   ProfessionalRepository
	cache  CacheInvalidator
	logger Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(repo ProfessionalRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List получает список мастеров; activeOnly - только работающие (публичный список)
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ProfessionalListResponse, error) {
	professionals, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessionalList(professionals), nil
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomainProfessional(p), nil
}

// Create создает мастера
// Рабочие дни приводятся к каноническим ключам, график проверяется так же, как при расчете слотов
func (s *Service) Create(ctx context.Context, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: creating professional name=%s", req.Name)

	p := &domain.Professional{Active: true}
	if err := applyRequest(p, req); err != nil {
		s.logger.Warn("Create: invalid professional: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created professional id=%d", created.ID)
	return models.FromDomainProfessional(created), nil
}

// Update изменяет данные и график мастера
// Уже созданные записи не пересчитываются, новые слоты считаются по новому графику
func (s *Service) Update(ctx context.Context, id int64, req *models.ProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: updating professional id=%d", id)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	if err := applyRequest(p, req); err != nil {
		s.logger.Warn("Update: invalid professional id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	if s.cache != nil {
		s.cache.InvalidateProfessional(id)
	}

	s.logger.Info("Update: successfully updated professional id=%d", id)
	return models.FromDomainProfessional(updated), nil
}

func applyRequest(p *domain.Professional, req *models.ProfessionalRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	workDays, err := domain.NormalizeWorkDays(req.WorkDays)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	dayStart, err := types.NewTimeStringFromString(req.DayStart)
	if err != nil {
		return fmt.Errorf("%w: dayStart: %v", ErrInvalidSchedule, err)
	}
	dayEnd, err := types.NewTimeStringFromString(req.DayEnd)
	if err != nil {
		return fmt.Errorf("%w: dayEnd: %v", ErrInvalidSchedule, err)
	}

	if _, err := availability.NewWorkingProfile(workDays, dayStart.String(), dayEnd.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	p.Name = name
	p.Phone = req.Phone
	p.WorkDays = workDays
	p.DayStart = dayStart
	p.DayEnd = dayEnd
	if req.Active != nil {
		p.Active = *req.Active
	}

	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
		s.logger.Warn("%s: professional id=%d not found", op, id)
		return ErrProfessionalNotFound
	}
	s.logger.Error("%s: repository error for professional id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
