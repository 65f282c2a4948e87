package health

import (
	"context"
	"net/http"

	"github.com/m04kA/Oasis-BookingService/internal/api/handlers"
)

// StorageChecker проверяет доступность хранилища
type StorageChecker interface {
	Ping(ctx context.Context) error
	Kind() string
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Response тело ответа health-check
type Response struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Handler struct {
	storage StorageChecker
	logger  Logger
}

func NewHandler(storage StorageChecker, logger Logger) *Handler {
	return &Handler{
		storage: storage,
		logger:  logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Warn("GET /healthz - Storage %s is not reachable: %v", h.storage.Kind(), err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: "degraded", Storage: h.storage.Kind()})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Storage: h.storage.Kind()})
}
