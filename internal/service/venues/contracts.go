package venues

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, sport *domain.Sport) ([]*domain.Venue, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	AverageByVenue(ctx context.Context, venueID int64) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
