package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	appointmentRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/appointment"
	blockRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/block"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	serviceRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/service"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	professionals map[int64]*domain.Professional
	services      map[int64]*domain.Service
}

func (f *fakeCatalog) GetProfessional(_ context.Context, id int64) (*domain.Professional, error) {
	p, ok := f.professionals[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return p, nil
}

func (f *fakeCatalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeAppointments struct {
	existing  []*domain.Appointment
	created   []*domain.Appointment
	createErr error
	inTx      bool
}

func (f *fakeAppointments) ListByFilter(ctx context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.inTx = ctx.Value(txMarker{}) != nil
	return f.existing, nil
}

func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = int64(len(f.created) + 100)
	f.created = append(f.created, a)
	return a, nil
}

type fakeBlocks struct {
	items []*domain.TimeBlock
	err   error
}

func (f *fakeBlocks) ListForDate(context.Context, int64, time.Time) ([]*domain.TimeBlock, error) {
	return f.items, f.err
}

type txMarker struct{}

type fakeTxManager struct {
	calls     int
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		return err
	}
	return f.commitErr
}

type fakeMetrics struct {
	results []string
}

func (f *fakeMetrics) ObserveAppointment(result string) {
	f.results = append(f.results, result)
}

// 2025-03-10 is a Monday
var (
	monday   = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	appointments *fakeAppointments
	blocks       *fakeBlocks
	tx           *fakeTxManager
	metrics      *fakeMetrics
	uc           *UseCase
}

func newFixture(now time.Time) *fixture {
	catalog := &fakeCatalog{
		professionals: map[int64]*domain.Professional{
			1: {ID: 1, WorkDays: []string{"segunda", "terça"}, DayStart: "08:00", DayEnd: "12:00", Active: true},
			2: {ID: 2, WorkDays: []string{"monday"}, DayStart: "08:00", DayEnd: "12:00", Active: false},
		},
		services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Corte", DurationMinutes: 60, Price: 80, Active: true},
		},
	}

	f := &fixture{
		appointments: &fakeAppointments{},
		blocks:       &fakeBlocks{},
		tx:           &fakeTxManager{},
		metrics:      &fakeMetrics{},
	}
	policy := domain.BookingPolicy{AdvanceBookingDays: 30, MinBookingNoticeMinutes: 120, Location: time.UTC}
	f.uc = NewUseCase(catalog, f.appointments, f.blocks, f.tx, policy, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func validRequest() *Request {
	return &Request{
		ProfessionalID: 1,
		ServiceID:      10,
		ClientName:     "  Maria Souza ",
		ClientPhone:    "+55 11 99999-0000",
		Date:           monday,
		StartTime:      "09:00",
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	f := newFixture(saturday.Add(10 * time.Hour))
	f.appointments.existing = []*domain.Appointment{
		{ID: 1, Date: monday, StartTime: "08:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		{ID: 2, Date: monday, StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusCancelled},
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "Maria Souza", resp.ClientName)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, 80.0, resp.ServicePrice)
	assert.True(t, f.appointments.inTx)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{"created"}, f.metrics.results)
}

func TestExecute_SlotConflicts(t *testing.T) {
	tests := []struct {
		name string
		prep func(f *fixture)
	}{
		{
			name: "overlapping appointment",
			prep: func(f *fixture) {
				f.appointments.existing = []*domain.Appointment{
					{ID: 1, Date: monday, StartTime: "08:30", DurationMinutes: 60, Status: domain.StatusScheduled},
				}
			},
		},
		{
			name: "timed block",
			prep: func(f *fixture) {
				start, end := types.TimeString("09:30"), types.TimeString("10:00")
				f.blocks.items = []*domain.TimeBlock{{ID: 3, StartDate: monday, EndDate: monday, StartTime: &start, EndTime: &end}}
			},
		},
		{
			name: "unique index violation on insert",
			prep: func(f *fixture) {
				f.appointments.createErr = fmt.Errorf("%w: Create: %v", appointmentRepo.ErrSlotTaken, &pq.Error{Code: "23505"})
			},
		},
		{
			name: "serialization failure while reading blocks",
			prep: func(f *fixture) {
				f.blocks.err = fmt.Errorf("%w: ListByFilter - execute query: %w", blockRepo.ErrExecQuery, &pq.Error{Code: "40001"})
			},
		},
		{
			name: "serialization failure on commit",
			prep: func(f *fixture) {
				f.tx.commitErr = fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(saturday.Add(10 * time.Hour))
			tt.prep(f)

			_, err := f.uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
			assert.Equal(t, []string{"conflict"}, f.metrics.results)
		})
	}
}

func TestExecute_BackToBackIsAllowed(t *testing.T) {
	f := newFixture(saturday)
	f.appointments.existing = []*domain.Appointment{
		{ID: 1, Date: monday, StartTime: "08:00", DurationMinutes: 60, Status: domain.StatusScheduled},
		{ID: 2, Date: monday, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		mutate   func(r *Request)
		expected error
	}{
		{name: "empty client name", mutate: func(r *Request) { r.ClientName = " " }, expected: ErrInvalidInput},
		{name: "missing phone", mutate: func(r *Request) { r.ClientPhone = "" }, expected: ErrInvalidInput},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "9h" }, expected: ErrInvalidInput},
		{name: "past date", mutate: func(r *Request) { r.Date = saturday.AddDate(0, 0, -1) }, expected: ErrInvalidDate},
		{name: "too far", mutate: func(r *Request) { r.Date = monday.AddDate(0, 1, 0) }, expected: ErrDateTooFarInFuture},
		{name: "unknown professional", mutate: func(r *Request) { r.ProfessionalID = 50 }, expected: ErrProfessionalNotFound},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = 50 }, expected: ErrServiceNotFound},
		{name: "inactive professional", mutate: func(r *Request) { r.ProfessionalID = 2 }, expected: ErrProfessionalUnavailable},
		{name: "day off", mutate: func(r *Request) { r.Date = monday.AddDate(0, 0, 2) }, expected: ErrProfessionalUnavailable},
		{name: "not aligned", mutate: func(r *Request) { r.StartTime = "09:15" }, expected: ErrInvalidSlot},
		{name: "overruns closing", mutate: func(r *Request) { r.StartTime = "11:30" }, expected: ErrInvalidSlot},
		{name: "before opening", mutate: func(r *Request) { r.StartTime = "07:00" }, expected: ErrInvalidSlot},
		{
			name:     "inside notice period",
			now:      monday.Add(7*time.Hour + 30*time.Minute),
			mutate:   func(r *Request) {},
			expected: ErrTooLateToBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			if now.IsZero() {
				now = saturday.Add(10 * time.Hour)
			}
			f := newFixture(now)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
			assert.Zero(t, f.tx.calls)
			assert.Equal(t, []string{"rejected"}, f.metrics.results)
		})
	}
}

func TestExecute_InternalErrors(t *testing.T) {
	f := newFixture(saturday)
	f.appointments.createErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{"error"}, f.metrics.results)

	f = newFixture(saturday)
	f.appointments.existing = []*domain.Appointment{
		{ID: 1, Date: monday, StartTime: "oito", DurationMinutes: 60, Status: domain.StatusScheduled},
	}
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_BlockReadFailureIsInternal(t *testing.T) {
	f := newFixture(saturday)
	f.blocks.err = fmt.Errorf("%w: ListByFilter - execute query: %w", blockRepo.ErrExecQuery, errors.New("connection reset"))

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrSlotNotAvailable)
}
