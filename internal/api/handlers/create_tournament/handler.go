package create_tournament

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidTournament = "некорректные данные турнира"
	msgVenueNotFound     = "площадка не найдена"
)

type Handler struct {
	service TournamentService
	logger  Logger
}

func NewHandler(service TournamentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/tournaments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateTournamentRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /admin/tournaments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := body.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/tournaments - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTournament)
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, tournaments.ErrVenueNotFound):
			h.logger.Warn("POST /admin/tournaments - Venue %d not found", body.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, tournaments.ErrInvalidInput):
			h.logger.Warn("POST /admin/tournaments - Invalid tournament: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTournament)

		default:
			h.logger.Error("POST /admin/tournaments - Failed to create tournament: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/tournaments - Created tournament %d (%s)", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
