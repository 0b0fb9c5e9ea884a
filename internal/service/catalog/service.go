package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	serviceRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/service"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	repo   ServiceRepository
	cache  CacheInvalidator
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List получает список услуг; activeOnly - только доступные для записи
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%s, duration=%d", req.Name, req.DurationMinutes)

	svc := &domain.Service{Active: true}
	if err := applyRequest(svc, req); err != nil {
		s.logger.Warn("Create: invalid service: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update изменяет услугу
// Новая длительность действует только для новых записей, существующие хранят свою
func (s *Service) Update(ctx context.Context, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	if err := applyRequest(svc, req); err != nil {
		s.logger.Warn("Update: invalid service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, svc)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	if s.cache != nil {
		s.cache.InvalidateService(id)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

func applyRequest(svc *domain.Service, req *models.ServiceRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidDuration, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	svc.Name = name
	svc.Description = req.Description
	svc.DurationMinutes = req.DurationMinutes
	svc.Price = req.Price
	if req.Active != nil {
		svc.Active = *req.Active
	}

	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
