package get_venues

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/venues"
)

const (
	msgInvalidSport = "некорректный вид спорта"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues?sport=football
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var sport *string
	if s := r.URL.Query().Get("sport"); s != "" {
		sport = &s
	}

	result, err := h.service.List(r.Context(), sport)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("GET /venues - Invalid sport filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSport)

		default:
			h.logger.Error("GET /venues - Failed to list venues: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues - Listed %d venues", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
