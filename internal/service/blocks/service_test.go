package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	blockRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/block"
	professionalRepo "github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/infra/storage/professional"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks/models"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items  map[int64]*domain.TimeBlock
	filter domain.BlocksFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[int64]*domain.TimeBlock)}
}

func (r *fakeRepo) ListByFilter(_ context.Context, filter domain.BlocksFilter) ([]*domain.TimeBlock, error) {
	r.filter = filter
	result := make([]*domain.TimeBlock, 0, len(r.items))
	for _, b := range r.items {
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeRepo) Create(_ context.Context, b *domain.TimeBlock) (*domain.TimeBlock, error) {
	b.ID = int64(len(r.items) + 1)
	r.items[b.ID] = b
	return b, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return blockRepo.ErrBlockNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeProfessionals struct{}

func (fakeProfessionals) GetProfessional(_ context.Context, id int64) (*domain.Professional, error) {
	if id != 1 {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return &domain.Professional{ID: 1}, nil
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateBlockRequest
		salonWide bool
		endDate   string
	}{
		{
			name:    "lunch break",
			req:     models.CreateBlockRequest{ProfessionalID: ptr.Ptr(int64(1)), StartDate: "2025-03-10", StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("13:00")},
			endDate: "2025-03-10",
		},
		{
			name:      "salon closed for a holiday",
			req:       models.CreateBlockRequest{StartDate: "2025-03-10", Reason: ptr.Ptr("Carnaval")},
			salonWide: true,
			endDate:   "2025-03-10",
		},
		{
			name:    "vacation",
			req:     models.CreateBlockRequest{ProfessionalID: ptr.Ptr(int64(1)), StartDate: "2025-03-10", EndDate: ptr.Ptr("2025-03-20")},
			endDate: "2025-03-20",
		},
		{
			name:    "overnight",
			req:     models.CreateBlockRequest{ProfessionalID: ptr.Ptr(int64(1)), StartDate: "2025-03-10", EndDate: ptr.Ptr("2025-03-11"), StartTime: ptr.Ptr("17:00"), EndTime: ptr.Ptr("10:00")},
			endDate: "2025-03-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, fakeProfessionals{}, nopLogger{})

			resp, err := svc.Create(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.salonWide, resp.SalonWide)
			assert.Equal(t, "2025-03-10", resp.StartDate)
			assert.Equal(t, tt.endDate, resp.EndDate)
			assert.Len(t, repo.items, 1)
		})
	}
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreateBlockRequest
		expected error
	}{
		{name: "bad date", req: models.CreateBlockRequest{StartDate: "10/03/2025"}, expected: ErrInvalidInput},
		{name: "bad time", req: models.CreateBlockRequest{StartDate: "2025-03-10", StartTime: ptr.Ptr("meio-dia")}, expected: ErrInvalidInput},
		{name: "reversed dates", req: models.CreateBlockRequest{StartDate: "2025-03-10", EndDate: ptr.Ptr("2025-03-09")}, expected: ErrInvalidRange},
		{name: "reversed times", req: models.CreateBlockRequest{StartDate: "2025-03-10", StartTime: ptr.Ptr("14:00"), EndTime: ptr.Ptr("13:00")}, expected: ErrInvalidRange},
		{name: "empty range", req: models.CreateBlockRequest{StartDate: "2025-03-10", StartTime: ptr.Ptr("14:00"), EndTime: ptr.Ptr("14:00")}, expected: ErrInvalidRange},
		{name: "unknown professional", req: models.CreateBlockRequest{ProfessionalID: ptr.Ptr(int64(9)), StartDate: "2025-03-10"}, expected: ErrProfessionalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, fakeProfessionals{}, nopLogger{})

			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, repo.items)
		})
	}
}

func TestListAndDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeProfessionals{}, nopLogger{})
	_, err := svc.Create(context.Background(), &models.CreateBlockRequest{StartDate: "2025-03-10"})
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{ProfessionalID: ptr.Ptr(int64(1)), Date: &date})
	require.NoError(t, err)
	assert.Len(t, resp.Blocks, 1)
	require.NotNil(t, repo.filter.ProfessionalID)
	assert.Equal(t, int64(1), *repo.filter.ProfessionalID)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrBlockNotFound)
}
