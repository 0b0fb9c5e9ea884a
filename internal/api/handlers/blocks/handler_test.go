package blocks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	listReq *models.ListBlocksRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	f.listReq = req
	return &models.BlockListResponse{Blocks: []models.BlockResponse{}}, nil
}

func (f *fakeService) Create(_ context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	if req.ProfessionalID != nil && *req.ProfessionalID == 404 {
		return nil, blocks.ErrProfessionalNotFound
	}
	if req.StartTime != nil && req.EndTime != nil && *req.StartTime >= *req.EndTime {
		return nil, fmt.Errorf("%w: start must be before end", blocks.ErrInvalidRange)
	}
	return &models.BlockResponse{ID: 5, ProfessionalID: req.ProfessionalID, StartDate: req.StartDate}, nil
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if id != 5 {
		return blocks.ErrBlockNotFound
	}
	return nil
}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/blocks", h.List).Methods(http.MethodGet)
	r.HandleFunc("/blocks", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/blocks/{blockId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestList_ParsesFilter(t *testing.T) {
	svc := &fakeService{}
	r := newRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blocks?professionalId=2&date=2025-03-10", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listReq.ProfessionalID)
	assert.Equal(t, int64(2), *svc.listReq.ProfessionalID)
	assert.Equal(t, "2025-03-10", svc.listReq.Date.Format("2006-01-02"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blocks?date=10-03-2025", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes(t *testing.T) {
	r := newRouter(&fakeService{})

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		status int
	}{
		{name: "lunch break", method: http.MethodPost, url: "/blocks", body: `{"professionalId":1,"startDate":"2025-03-10","startTime":"12:00","endTime":"13:00"}`, status: http.StatusCreated},
		{name: "salon closed", method: http.MethodPost, url: "/blocks", body: `{"startDate":"2025-12-25"}`, status: http.StatusCreated},
		{name: "inverted times", method: http.MethodPost, url: "/blocks", body: `{"professionalId":1,"startDate":"2025-03-10","startTime":"13:00","endTime":"12:00"}`, status: http.StatusBadRequest},
		{name: "unknown professional", method: http.MethodPost, url: "/blocks", body: `{"professionalId":404,"startDate":"2025-03-10"}`, status: http.StatusNotFound},
		{name: "missing start date", method: http.MethodPost, url: "/blocks", body: `{"professionalId":1}`, status: http.StatusBadRequest},
		{name: "delete", method: http.MethodDelete, url: "/blocks/5", status: http.StatusNoContent},
		{name: "delete missing", method: http.MethodDelete, url: "/blocks/6", status: http.StatusNotFound},
		{name: "delete bad id", method: http.MethodDelete, url: "/blocks/x", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
