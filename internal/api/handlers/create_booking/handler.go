package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SVP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidInput     = "некорректные данные бронирования"
	msgVenueNotFound    = "площадка не найдена"
	msgDiscountNotFound = "промокод не найден"
	msgSlotNotAvailable = "слот уже занят"
	msgInvalidTimeSlot  = "время вне часов работы площадки"
	msgPaymentDeclined  = "платеж отклонен"
	msgPaymentCancelled = "платеж отменен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateBookingRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := body.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue %d not found", body.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrDiscountNotFound):
			h.logger.Warn("POST /bookings - Discount code not found")
			handlers.RespondBadRequest(w, msgDiscountNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot %s already taken on venue %d", body.StartTime, body.VenueID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Time %s outside operating hours of venue %d", body.StartTime, body.VenueID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings - Payment declined for venue %d", body.VenueID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, createBooking.ErrPaymentCancelled):
			h.logger.Warn("POST /bookings - Payment cancelled for venue %d", body.VenueID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentCancelled)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created booking %d (venue=%d, status=%s)", result.ID, result.VenueID, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
