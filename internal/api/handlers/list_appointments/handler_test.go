package list_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req *models.ListRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"date":             {"2025-03-10"},
		"professionalId":   {"3"},
		"includeCancelled": {"true"},
	})
	require.NoError(t, err)
	require.NotNil(t, req.ProfessionalID)
	assert.Equal(t, int64(3), *req.ProfessionalID)
	assert.Equal(t, req.StartDate, req.EndDate)
	assert.True(t, req.IncludeCancelled)

	req, err = ToServiceRequest(url.Values{"startDate": {"2025-03-01"}, "endDate": {"2025-03-31"}, "status": {"agendado"}})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", req.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-31", req.EndDate.Format("2006-01-02"))
	assert.Equal(t, "agendado", *req.Status)

	for _, bad := range []url.Values{
		{"date": {"amanhã"}},
		{"professionalId": {"0"}},
		{"includeCancelled": {"talvez"}},
		{"endDate": {"31/03/2025"}},
	} {
		_, err := ToServiceRequest(bad)
		assert.Error(t, err, bad.Encode())
	}
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2025-03-10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.err = appointments.ErrInvalidInput
	rec = httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
