package get_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/service/bookings"
	"github.com/m04kA/SVP-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidFilter  = "некорректный фильтр бронирований"
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

// Handle GET /api/v1/admin/bookings?venueId=1&date=2026-03-14&status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if venueIDStr := query.Get("venueId"); venueIDStr != "" {
		venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid venue ID: %q", venueIDStr)
			handlers.RespondBadRequest(w, msgInvalidVenueID)
			return
		}
		req.VenueID = &venueID
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
