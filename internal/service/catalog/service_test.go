package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	serviceRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/service"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/catalog/models"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items map[int64]*domain.Service
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, s := range r.items {
		if activeOnly && !s.Active {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *fakeRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	s.ID = int64(len(r.items) + 1)
	r.items[s.ID] = s
	return s, nil
}

func (r *fakeRepo) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.items[s.ID] = s
	return s, nil
}

type fakeCache struct {
	invalidated []int64
}

func (c *fakeCache) InvalidateService(id int64) {
	c.invalidated = append(c.invalidated, id)
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Service{}}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.ServiceRequest{
		Name:            "Manicure",
		DurationMinutes: 40,
		Price:           35.5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 40, resp.DurationMinutes)
	assert.True(t, resp.Active)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name     string
		req      models.ServiceRequest
		expected error
	}{
		{name: "blank name", req: models.ServiceRequest{Name: " ", DurationMinutes: 30}, expected: ErrInvalidInput},
		{name: "too short", req: models.ServiceRequest{Name: "Sobrancelha", DurationMinutes: domain.MinServiceDurationMinutes - 1}, expected: ErrInvalidDuration},
		{name: "too long", req: models.ServiceRequest{Name: "Progressiva", DurationMinutes: domain.MaxServiceDurationMinutes + 1}, expected: ErrInvalidDuration},
		{name: "negative price", req: models.ServiceRequest{Name: "Corte", DurationMinutes: 30, Price: -1}, expected: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{items: map[int64]*domain.Service{}}
			svc := NewService(repo, nil, nopLogger{})

			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, repo.items)
		})
	}
}

func TestUpdate(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Service{
		3: {ID: 3, Name: "Corte", DurationMinutes: 30, Price: 50, Active: true},
	}}
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})

	resp, err := svc.Update(context.Background(), 3, &models.ServiceRequest{
		Name:            "Corte feminino",
		DurationMinutes: 60,
		Price:           90,
		Active:          ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.False(t, resp.Active)
	assert.Equal(t, []int64{3}, cache.invalidated)

	_, err = svc.Update(context.Background(), 4, &models.ServiceRequest{Name: "X", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestList_ActiveOnly(t *testing.T) {
	repo := &fakeRepo{items: map[int64]*domain.Service{
		1: {ID: 1, Name: "Corte", DurationMinutes: 30, Active: true},
		2: {ID: 2, Name: "Luzes", DurationMinutes: 120, Active: false},
	}}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Corte", resp.Services[0].Name)
}
