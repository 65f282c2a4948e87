package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Oasis-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRange = "invalid date range, expected from <= to in YYYY-MM-DD"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from, to (опционально, YYYY-MM-DD)
// Публичный endpoint - контактные данные не возвращаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.AvailabilityRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	result, err := h.useCase.Availability(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved successfully: booked=%d, blocked=%d",
		len(result.BookedSlots), len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
