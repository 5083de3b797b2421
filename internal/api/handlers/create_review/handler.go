package create_review

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
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidReview  = "некорректные данные отзыва"
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

// Handle POST /api/v1/venues/{venueId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{venueId}/reviews - Invalid venue ID: %v", vars["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var body CreateReviewRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /venues/%d/reviews - Invalid request body: %v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), body.ToServiceRequest(venueID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrVenueNotFound):
			h.logger.Warn("POST /venues/%d/reviews - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /venues/%d/reviews - Invalid review: %v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidReview)

		default:
			h.logger.Error("POST /venues/%d/reviews - Failed to create review: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/%d/reviews - Created review %d (rating=%d)", venueID, result.ID, result.Rating)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
