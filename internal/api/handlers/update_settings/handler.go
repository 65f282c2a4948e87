package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	"github.com/m04kA/Oasis-BookingService/internal/service/availability"
	"github.com/m04kA/Oasis-BookingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSettings    = "invalid availability settings"
)

// ErrorResponse ответ с описанием нарушенного правила
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

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

// Handle PUT /api/v1/admin/settings
// Обновляются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   msgInvalidSettings,
				Details: details(err),
			})

		case errors.Is(err, availability.ErrStorage):
			h.logger.Error("PUT /admin/settings - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated: days=%v, hours=%d-%d",
		result.AvailableDays, result.StartHour, result.EndHour)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// details отрезает префикс sentinel-ошибки
func details(err error) string {
	msg := err.Error()
	prefix := availability.ErrInvalidInput.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
