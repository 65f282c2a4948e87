package get_settings

import (
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetSettings(r.Context())

	h.logger.Info("GET /admin/settings - Settings retrieved: days=%v, hours=%d-%d",
		result.AvailableDays, result.StartHour, result.EndHour)
	handlers.RespondJSON(w, http.StatusOK, result)
}
