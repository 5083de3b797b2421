package get_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/reviews"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{venueId}/reviews - Invalid venue ID: %v", vars["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.ListByVenue(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrVenueNotFound):
			h.logger.Warn("GET /venues/%d/reviews - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/%d/reviews - Failed to list reviews: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/%d/reviews - Returned %d reviews (avg=%.2f)", venueID, result.Total, result.AverageRating)
	handlers.RespondJSON(w, http.StatusOK, result)
}
