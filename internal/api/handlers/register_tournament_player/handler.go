package register_tournament_player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments/models"
)

const (
	msgInvalidTournamentID = "некорректный ID турнира"
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidPlayer       = "некорректное имя игрока"
	msgTournamentNotFound  = "турнир не найден"
	msgAlreadyRegistered   = "игрок уже зарегистрирован"
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

// Handle POST /api/v1/tournaments/{tournamentId}/players
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tournamentID, err := strconv.ParseInt(vars["tournamentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /tournaments/{tournamentId}/players - Invalid tournament ID: %v", vars["tournamentId"])
		handlers.RespondBadRequest(w, msgInvalidTournamentID)
		return
	}

	var body models.RegisterPlayerRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /tournaments/%d/players - Invalid request body: %v", tournamentID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.RegisterPlayer(r.Context(), tournamentID, &body)
	if err != nil {
		switch {
		case errors.Is(err, tournaments.ErrTournamentNotFound):
			h.logger.Warn("POST /tournaments/%d/players - Tournament not found", tournamentID)
			handlers.RespondNotFound(w, msgTournamentNotFound)

		case errors.Is(err, tournaments.ErrAlreadyRegistered):
			h.logger.Warn("POST /tournaments/%d/players - Player already registered", tournamentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyRegistered)

		case errors.Is(err, tournaments.ErrInvalidInput):
			h.logger.Warn("POST /tournaments/%d/players - Invalid player: %v", tournamentID, err)
			handlers.RespondBadRequest(w, msgInvalidPlayer)

		default:
			h.logger.Error("POST /tournaments/%d/players - Failed to register player: %v", tournamentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tournaments/%d/players - Registered player, total=%d", tournamentID, result.PlayersCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
