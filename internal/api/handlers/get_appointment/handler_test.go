package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{}

func (fakeService) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	if id != 7 {
		return nil, appointments.ErrAppointmentNotFound
	}
	return &models.AppointmentResponse{ID: 7, Status: "confirmado"}, nil
}

func TestHandle(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}", NewHandler(fakeService{}, nopLogger{}).Handle)

	tests := []struct {
		url    string
		status int
	}{
		{url: "/api/v1/appointments/7", status: http.StatusOK},
		{url: "/api/v1/appointments/8", status: http.StatusNotFound},
		{url: "/api/v1/appointments/sete", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
		assert.Equal(t, tt.status, rec.Code, tt.url)
	}
}
