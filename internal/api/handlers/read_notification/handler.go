package read_notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgNotificationNotFound  = "уведомление не найдено"
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

// Handle POST /api/v1/admin/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationID, err := strconv.ParseInt(vars["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/notifications/{notificationId}/read - Invalid ID: %v", vars["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("POST /admin/notifications/%d/read - Notification not found", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("POST /admin/notifications/%d/read - Failed to mark read: %v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/notifications/%d/read - Success", notificationID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleAll POST /api/v1/admin/notifications/read
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		h.logger.Error("POST /admin/notifications/read - Failed to mark all read: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/notifications/read - Success")
	w.WriteHeader(http.StatusNoContent)
}
