package get_tournaments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments"
)

const msgInvalidSport = "некорректный вид спорта"

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

// Handle GET /api/v1/tournaments?sport=football
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var sport *string
	if s := r.URL.Query().Get("sport"); s != "" {
		sport = &s
	}

	result, err := h.service.List(r.Context(), sport)
	if err != nil {
		switch {
		case errors.Is(err, tournaments.ErrInvalidInput):
			h.logger.Warn("GET /tournaments - Invalid sport filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSport)

		default:
			h.logger.Error("GET /tournaments - Failed to list tournaments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tournaments - Returned %d tournaments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
