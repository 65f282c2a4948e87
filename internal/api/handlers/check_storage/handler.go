package check_storage

import (
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
)

type Handler struct {
	service StorageService
	logger  Logger
}

func NewHandler(service StorageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/storage
// Возвращает 200 при доступном хранилище и 503 иначе, тело одинаковое
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.service.CheckStorage(r.Context())

	if !status.Connected {
		h.logger.Warn("GET /admin/storage - Storage %s is not reachable", status.StorageType)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	h.logger.Info("GET /admin/storage - Storage %s is reachable", status.StorageType)
	handlers.RespondJSON(w, http.StatusOK, status)
}
