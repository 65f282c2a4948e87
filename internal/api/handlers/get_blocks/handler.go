package get_blocks

import (
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocks - Storage unavailable: %v", err)
		handlers.RespondServiceUnavailable(w)
		return
	}

	h.logger.Info("GET /admin/blocks - Blocks retrieved: count=%d", len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
