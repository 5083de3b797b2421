package get_tournaments

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/tournaments/models"
)

// TournamentService интерфейс сервиса турниров
type TournamentService interface {
	List(ctx context.Context, sport *string) (*models.TournamentListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
