package nearby_venues

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/integrations/geoprovider"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	List(ctx context.Context, sport *domain.Sport) ([]*domain.Venue, error)
}

// GeoProviderClient интерфейс клиента геосервиса
type GeoProviderClient interface {
	GetCurrentPositionWithGracefulDegradation(ctx context.Context, sessionID string) (*geoprovider.Position, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
