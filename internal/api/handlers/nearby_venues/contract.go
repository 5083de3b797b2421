package nearby_venues

import (
	"context"

	nearbyVenues "github.com/m04kA/SVP-BookingService/internal/usecase/nearby_venues"
)

type NearbyVenuesUseCase interface {
	Execute(ctx context.Context, req *nearbyVenues.Request) (*nearbyVenues.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
