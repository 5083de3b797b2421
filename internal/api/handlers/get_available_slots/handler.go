package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SVP-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots?date=2026-03-14
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/slots - Invalid venue ID: %v", vars["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/%d/slots - Invalid date: %q", venueID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%d/slots - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /venues/%d/slots - Invalid input: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/%d/slots - Failed to build slots: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/%d/slots - Returned %d slots for %s", venueID, len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
