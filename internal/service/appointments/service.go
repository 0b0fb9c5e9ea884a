package appointments

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	appointmentRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/appointment"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments/models"
)

// Service сервис для работы с записями (агенда администратора)
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи с фильтрацией
//
// Примеры использования:
// - Агенда на день: StartDate и EndDate указывают на одну дату
// - Агенда мастера: указать ProfessionalID
// - Включая отмененные: IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		s.logger.Warn("List: end date %s is before start date %s",
			filter.EndDate.Format(domain.DateFormat), filter.StartDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись и освобождает время мастера
// Отменить можно только запись в статусе agendado или confirmado
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appointment, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason); err != nil {
		return nil, s.mapRepoError("Cancel", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return s.GetByID(ctx, id)
}

// UpdateStatus меняет статус записи (confirmado, concluido, nao_compareceu, cancelado)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointment, err := s.get(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appointment.Status, next, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, next)
	}

	// Отмена через смену статуса тоже проставляет cancelled_at
	if next == domain.StatusCancelled {
		err = s.appointmentRepo.Cancel(ctx, id, nil)
	} else {
		err = s.appointmentRepo.UpdateStatus(ctx, id, next)
	}
	if err != nil {
		return nil, s.mapRepoError("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, next)
	return s.GetByID(ctx, id)
}

// Вспомогательные методы

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return appointment, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
