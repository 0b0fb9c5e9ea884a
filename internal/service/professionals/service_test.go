package professionals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/professionals/models"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/ptr"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items      map[int64]*domain.Professional
	nextID     int64
	activeOnly bool
	err        error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[int64]*domain.Professional), nextID: 1}
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, activeOnly bool) ([]*domain.Professional, error) {
	r.activeOnly = activeOnly
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Professional, 0)
	for _, p := range r.items {
		if activeOnly && !p.Active {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *fakeRepo) Create(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	if r.err != nil {
		return nil, r.err
	}
	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = p
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	if _, ok := r.items[p.ID]; !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	r.items[p.ID] = p
	return p, nil
}

type fakeCache struct {
	invalidated []int64
}

func (c *fakeCache) InvalidateProfessional(id int64) {
	c.invalidated = append(c.invalidated, id)
}

func validRequest() *models.ProfessionalRequest {
	return &models.ProfessionalRequest{
		Name:     " Sandy ",
		WorkDays: []string{"Terça-feira", "sábado", "quarta"},
		DayStart: "09:00",
		DayEnd:   "18:00:00",
	}
}

func TestCreate_NormalizesSchedule(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Sandy", resp.Name)
	assert.Equal(t, []string{"tuesday", "wednesday", "saturday"}, resp.WorkDays)
	assert.Equal(t, "09:00", resp.DayStart)
	assert.Equal(t, "18:00", resp.DayEnd)
	assert.True(t, resp.Active)
}

func TestCreate_InvalidSchedule(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *models.ProfessionalRequest)
		expected error
	}{
		{name: "blank name", mutate: func(r *models.ProfessionalRequest) { r.Name = "  " }, expected: ErrInvalidInput},
		{name: "unknown weekday", mutate: func(r *models.ProfessionalRequest) { r.WorkDays = []string{"feriado"} }, expected: ErrInvalidSchedule},
		{name: "malformed start", mutate: func(r *models.ProfessionalRequest) { r.DayStart = "nove" }, expected: ErrInvalidSchedule},
		{name: "start after end", mutate: func(r *models.ProfessionalRequest) { r.DayStart = "19:00" }, expected: ErrInvalidSchedule},
		{name: "empty window", mutate: func(r *models.ProfessionalRequest) { r.DayStart = "18:00" }, expected: ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, nil, nopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, repo.items)
		})
	}
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	repo := newFakeRepo()
	repo.items[5] = &domain.Professional{ID: 5, Name: "Yasmin", WorkDays: []string{"monday"}, DayStart: "08:00", DayEnd: "12:00", Active: true}
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})

	req := validRequest()
	req.Active = ptr.Ptr(false)

	resp, err := svc.Update(context.Background(), 5, req)
	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, types.TimeString("09:00"), repo.items[5].DayStart)
	assert.Equal(t, []int64{5}, cache.invalidated)
}

func TestUpdate_KeepsActiveFlagWhenOmitted(t *testing.T) {
	repo := newFakeRepo()
	repo.items[5] = &domain.Professional{ID: 5, Name: "Yasmin", WorkDays: []string{"monday"}, DayStart: "08:00", DayEnd: "12:00", Active: false}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	resp, err := svc.Update(context.Background(), 5, validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestUpdate_NotFound(t *testing.T) {
	cache := &fakeCache{}
	svc := NewService(newFakeRepo(), cache, nopLogger{})

	_, err := svc.Update(context.Background(), 9, validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Empty(t, cache.invalidated)
}

func TestList(t *testing.T) {
	repo := newFakeRepo()
	repo.items[1] = &domain.Professional{ID: 1, Name: "A", Active: true}
	repo.items[2] = &domain.Professional{ID: 2, Name: "B", Active: false}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, "A", resp.Professionals[0].Name)
	assert.Equal(t, []string{}, resp.Professionals[0].WorkDays)
	assert.True(t, repo.activeOnly)

	repo.err = errors.New("db down")
	_, err = svc.List(context.Background(), false)
	assert.ErrorIs(t, err, ErrInternal)
}
