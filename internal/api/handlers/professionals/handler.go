package professionals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/professionals"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/professionals/models"
)

const (
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgInvalidRequest        = "corpo da requisição inválido"
	msgInvalidSchedule       = "horário de trabalho inválido"
	msgNotFound              = "profissional não encontrado"
)

// Handler CRUD мастеров: List публичный, остальное для администратора
type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/professionals?all=true
// По умолчанию возвращаются только активные мастера
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if v := r.URL.Query().Get("all"); v != "" {
		all, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /professionals - Invalid all parameter: %v", err)
			handlers.RespondBadRequest(w, "parâmetro all inválido")
			return
		}
		activeOnly = !all
	}

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/professionals/{professionalId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.professionalID(w, r, "GET /professionals/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /professionals/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/professionals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /professionals")
	if !ok {
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "POST /professionals", err)
		return
	}

	h.logger.Info("POST /professionals - Professional created: professional_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/professionals/{professionalId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.professionalID(w, r, "PUT /professionals/{id}")
	if !ok {
		return
	}

	req, ok := h.decode(w, r, "PUT /professionals/{id}")
	if !ok {
		return
	}

	result, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, "PUT /professionals/{id}", err)
		return
	}

	h.logger.Info("PUT /professionals/{id} - Professional updated: professional_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) professionalID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["professionalId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("%s - Invalid professional ID: %s", route, mux.Vars(r)["professionalId"])
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*models.ProfessionalRequest, bool) {
	var req models.ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return nil, false
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return nil, false
	}
	return &req, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, professionals.ErrProfessionalNotFound):
		h.logger.Warn("%s - Professional not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, professionals.ErrInvalidSchedule):
		h.logger.Warn("%s - Invalid schedule: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)

	case errors.Is(err, professionals.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
