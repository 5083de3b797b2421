package get_notifications

import (
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/notifications - Failed to list notifications: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/notifications - Returned %d notifications (%d unread)", result.Total, result.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
