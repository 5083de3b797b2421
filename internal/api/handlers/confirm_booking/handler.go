package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAlreadyConfirmed = "бронирование уже подтверждено"
	msgSlotTaken        = "слот уже занят другим подтвержденным бронированием"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{bookingId}/confirm - Invalid booking ID: %v", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.ConfirmPayment(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/%d/confirm - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAlreadyConfirmed):
			h.logger.Warn("POST /admin/bookings/%d/confirm - Already confirmed", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)

		case errors.Is(err, bookings.ErrSlotTaken):
			h.logger.Warn("POST /admin/bookings/%d/confirm - Slot taken by a competing booking", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		default:
			h.logger.Error("POST /admin/bookings/%d/confirm - Failed to confirm: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/%d/confirm - Confirmed", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
