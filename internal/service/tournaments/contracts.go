package tournaments

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// TournamentRepository интерфейс репозитория турниров
type TournamentRepository interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	GetByID(ctx context.Context, id int64) (*domain.Tournament, error)
	List(ctx context.Context, sport *domain.Sport) ([]*domain.Tournament, error)
	UpdatePlayers(ctx context.Context, id int64, players []string) error
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
