package send_chat_message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/chats"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidMessage   = "некорректное сообщение"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/chat - Invalid booking ID: %v", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var body SendMessageRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings/%d/chat - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.SendMessage(r.Context(), body.ToServiceRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, chats.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/chat - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, chats.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%d/chat - Invalid message: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidMessage)

		default:
			h.logger.Error("POST /bookings/%d/chat - Failed to send message: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/chat - Message %d sent by %s", bookingID, result.ID, result.Sender)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
