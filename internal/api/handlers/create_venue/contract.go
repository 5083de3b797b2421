package create_venue

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/service/venues/models"
)

// VenueService интерфейс сервиса площадок
type VenueService interface {
	Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
