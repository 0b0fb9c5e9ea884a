package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/availability"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	serviceRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/service"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	catalog         CatalogReader
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	policy          domain.BookingPolicy
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogReader,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         catalog,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		policy:          policy,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if uc.metrics != nil && !errors.Is(err, ErrInvalidInput) {
		count := 0
		if resp != nil {
			count = len(resp.Slots)
		}
		uc.metrics.ObserveSlots(count, err)
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 2. Проверяем дату относительно текущего времени салона
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем мастера
	professional, err := uc.catalog.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	resp := &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 5. Неактивный мастер не принимает записи - это не ошибка
	if !professional.Active {
		uc.logger.Info("GetAvailableSlots: professional id=%d is inactive", req.ProfessionalID)
		return resp, nil
	}

	// 6. Рабочий профиль мастера
	profile, err := availability.ProfileFromProfessional(professional)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid working profile of professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid working profile: %v", ErrInternal, err)
	}

	if _, working := availability.ResolveWorkingDay(profile, req.Date); !working {
		uc.logger.Info("GetAvailableSlots: professional id=%d does not work on %s",
			req.ProfessionalID, req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 7. Записи и блокировки на эту дату
	appointments, err := uc.appointmentRepo.ListByFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID: &req.ProfessionalID,
		StartDate:      &req.Date,
		EndDate:        &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.ListForDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 8. Считаем свободные слоты
	slots, err := availability.GenerateSlots(availability.Request{
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Profile:         profile,
		Appointments:    appointments,
		Blocks:          blocks,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 9. На сегодня убираем слоты, до которых осталось меньше минимального времени
	resp.Slots = filterByNotice(slots, uc.policy.EarliestStart(req.Date, now))

	uc.logger.Info("GetAvailableSlots: %d slots for professional=%d, service=%d, date=%s",
		len(resp.Slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// filterByNotice оставляет слоты, которые начинаются не раньше earliest (минуты от полуночи)
func filterByNotice(slots []types.TimeString, earliest int) []types.TimeString {
	if earliest <= 0 {
		return slots
	}

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.Minutes()
		if err != nil {
			continue
		}
		if start >= earliest {
			result = append(result, slot)
		}
	}
	return result
}
