package delete_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/service/blocks"
	"github.com/m04kA/Oasis-BookingService/internal/service/blocks/models"
)

const (
	msgMissingDate  = "date is required"
	msgInvalidScope = "date must be YYYY-MM-DD and time a slot label like 9:00 AM"
	msgNotFound     = "block not found"
)

// UnblockResponse HTTP response model
type UnblockResponse struct {
	Success bool `json:"success"`
}

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

// Handle DELETE /api/v1/admin/blocks?date=2026-10-19&time=9:00%20AM
// Без time снимается блокировка всего дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := models.ScopeRequest{Date: query.Get("date")}
	if req.Date == "" {
		h.logger.Warn("DELETE /admin/blocks - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if query.Has("time") {
		t := query.Get("time")
		req.Time = &t
	}

	if err := h.service.Unblock(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/blocks - Invalid scope: %v", err)
			handlers.RespondBadRequest(w, msgInvalidScope)

		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocks - Block not found: date=%s", req.Date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blocks.ErrStorage):
			h.logger.Error("DELETE /admin/blocks - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("DELETE /admin/blocks - Failed to unblock: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocks - Unblocked: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, UnblockResponse{Success: true})
}
