package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/venues"
	"github.com/m04kA/SVP-BookingService/internal/service/venues/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidVenue = "некорректные данные площадки"
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

// Handle POST /api/v1/admin/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body models.CreateVenueRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /admin/venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &body)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /admin/venues - Invalid venue: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVenue)

		default:
			h.logger.Error("POST /admin/venues - Failed to create venue: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/venues - Created venue %d (%s)", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
