package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/availability"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	appointmentRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/appointment"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	serviceRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/service"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	catalog         CatalogReader
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	txManager       TransactionManager
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
	txManager TransactionManager,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:         catalog,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		policy:          policy,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка свободного слота и вставка выполняются в одной сериализуемой транзакции;
// уникальный индекс в БД дополнительно защищает от двойной записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.observe(err)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: professional=%d, service=%d, date=%s, time=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 2. Проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем мастера
	professional, err := uc.catalog.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Мастер должен работать в этот день
	if !professional.Active {
		uc.logger.Warn("CreateAppointment: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalUnavailable
	}

	profile, err := availability.ProfileFromProfessional(professional)
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid working profile of professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid working profile: %v", ErrInternal, err)
	}

	window, working := availability.ResolveWorkingDay(profile, req.Date)
	if !working {
		uc.logger.Warn("CreateAppointment: professional id=%d does not work on %s",
			req.ProfessionalID, req.Date.Format(domain.DateFormat))
		return nil, ErrProfessionalUnavailable
	}

	// 6. Время должно быть одним из слотов сетки и укладываться в рабочий день
	start, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !availability.IsCandidate(window, start, service.DurationMinutes) {
		uc.logger.Warn("CreateAppointment: %s is not a valid %d-minute slot", req.StartTime, service.DurationMinutes)
		return nil, ErrInvalidSlot
	}

	// 7. Минимальное время до начала (только для сегодняшней даты)
	if start < uc.policy.EarliestStart(req.Date, now) {
		uc.logger.Warn("CreateAppointment: %s is within the %d-minute notice period",
			req.StartTime, uc.policy.MinBookingNoticeMinutes)
		return nil, fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, uc.policy.MinBookingNoticeMinutes)
	}

	var result *domain.Appointment

	// 8. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Активные записи мастера на эту дату (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListByFilter(txCtx, domain.AppointmentsFilter{
			ProfessionalID: &req.ProfessionalID,
			StartDate:      &req.Date,
			EndDate:        &req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 8.2. Блокировки мастера и салона
		blocks, err := uc.blockRepo.ListForDate(txCtx, req.ProfessionalID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get blocks: %w", ErrInternal, err)
		}

		// 8.3. Проверяем слот тем же сканером, что и при расчете свободного времени
		scanner, err := availability.NewScanner(req.Date, appointments, blocks, service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to scan commitments: %v", ErrInternal, err)
		}

		candidate := availability.Interval{Start: start, End: start + service.DurationMinutes}
		if conflict, found := scanner.FirstConflict(candidate); found {
			uc.logger.Warn("CreateAppointment: slot %s conflicts with %s id=%d",
				req.StartTime, conflict.Origin, conflict.SourceID)
			return ErrSlotNotAvailable
		}

		// 8.4. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			ClientName:      strings.TrimSpace(req.ClientName),
			ClientPhone:     strings.TrimSpace(req.ClientPhone),
			Date:            domain.DateOnly(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// mapTxError переводит ошибки транзакции в ошибки usecase
// Нарушение уникального индекса и конфликт сериализации означают, что слот заняли параллельно
func (uc *UseCase) mapTxError(err error) error {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return err
	case errors.Is(err, appointmentRepo.ErrSlotTaken), appointmentRepo.IsSerializationFailure(err):
		uc.logger.Warn("CreateAppointment: concurrent booking detected: %v", err)
		return ErrSlotNotAvailable
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateAppointment: %v", err)
		return err
	default:
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (uc *UseCase) observe(err error) {
	if uc.metrics == nil {
		return
	}
	switch {
	case err == nil:
		uc.metrics.ObserveAppointment("created")
	case errors.Is(err, ErrSlotNotAvailable):
		uc.metrics.ObserveAppointment("conflict")
	case errors.Is(err, ErrInternal):
		uc.metrics.ObserveAppointment("error")
	default:
		uc.metrics.ObserveAppointment("rejected")
	}
}
