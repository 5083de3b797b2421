package register_tournament_player

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/tournaments/models"
)

// TournamentService интерфейс сервиса турниров
type TournamentService interface {
	RegisterPlayer(ctx context.Context, id int64, req *models.RegisterPlayerRequest) (*models.TournamentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
