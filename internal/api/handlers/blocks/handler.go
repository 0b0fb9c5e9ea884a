package blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks"
	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/service/blocks/models"
)

const (
	msgInvalidBlockID       = "ID do bloqueio inválido"
	msgInvalidParams        = "parâmetros de consulta inválidos"
	msgInvalidRequest       = "corpo da requisição inválido"
	msgInvalidRange         = "intervalo de bloqueio inválido"
	msgNotFound             = "bloqueio não encontrado"
	msgProfessionalNotFound = "profissional não encontrado"
)

// Handler блокировки времени (отпуск, перерыв, закрытие салона)
type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/blocks?professionalId=1&date=2025-03-10
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBlocksRequest{}
	query := r.URL.Query()

	if v := query.Get("professionalId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /blocks - Invalid professionalId: %s", v)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.ProfessionalID = &id
	}
	if v := query.Get("date"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			h.logger.Warn("GET /blocks - Invalid date: %s", v)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /blocks - Failed to list blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/blocks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /blocks - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrProfessionalNotFound):
			h.logger.Warn("POST /blocks - Professional not found")
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, blocks.ErrInvalidRange):
			h.logger.Warn("POST /blocks - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /blocks - Failed to create block: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: block_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Delete DELETE /api/v1/blocks/{blockId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["blockId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /blocks/{id} - Invalid block ID: %s", mux.Vars(r)["blockId"])
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, blocks.ErrBlockNotFound) {
			h.logger.Warn("DELETE /blocks/{id} - Block not found: block_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /blocks/{id} - Failed to delete block: block_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block deleted: block_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
