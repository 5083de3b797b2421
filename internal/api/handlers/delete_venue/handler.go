package delete_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
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

// Handle DELETE /api/v1/admin/venues/{venueId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/venues/{venueId} - Invalid venue ID: %v", vars["venueId"])
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	if err := h.service.Delete(r.Context(), venueID); err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("DELETE /admin/venues/%d - Venue not found", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("DELETE /admin/venues/%d - Failed to delete venue: %v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/venues/%d - Success", venueID)
	w.WriteHeader(http.StatusNoContent)
}
