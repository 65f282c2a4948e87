package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/service/blocks"
	"github.com/m04kA/Oasis-BookingService/internal/service/blocks/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidScope       = "date must be YYYY-MM-DD and time a slot label like 9:00 AM"
)

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

// Handle POST /api/v1/admin/blocks
// Body: {"date": "2026-10-19", "time": "9:00 AM"}; без time блокируется весь день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ScopeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Block(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks - Invalid scope: %v", err)
			handlers.RespondBadRequest(w, msgInvalidScope)

		case errors.Is(err, blocks.ErrStorage):
			h.logger.Error("POST /admin/blocks - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /admin/blocks - Failed to block: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Blocked: id=%s, date=%s, whole_day=%t", result.ID, result.Date, result.WholeDay)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
