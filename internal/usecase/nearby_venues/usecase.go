package nearby_venues

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	geoClient "github.com/m04kA/SVP-BookingService/internal/integrations/geoprovider"
	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

// UseCase use case для поиска ближайших площадок
type UseCase struct {
	venueRepo VenueRepository
	geoClient GeoProviderClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venueRepo VenueRepository, geoClient GeoProviderClient, logger Logger) *UseCase {
	return &UseCase{
		venueRepo: venueRepo,
		geoClient: geoClient,
		logger:    logger,
	}
}

// Execute выполняет use case поиска ближайших площадок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("NearbyVenues: session=%s, has_position=%t", req.SessionID, req.Position != nil)

	// 1. Определяем позицию клиента: из запроса или через геосервис
	position := req.Position
	if position == nil {
		if req.SessionID == "" {
			uc.logger.Warn("NearbyVenues: neither position nor session provided")
			return nil, fmt.Errorf("%w: position or sessionID is required", ErrInvalidInput)
		}

		pos, err := uc.geoClient.GetCurrentPositionWithGracefulDegradation(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, geoClient.ErrPositionUnavailable) || errors.Is(err, geoClient.ErrServiceDegraded) {
				uc.logger.Warn("NearbyVenues: position unavailable for session=%s", req.SessionID)
				return nil, ErrPositionUnavailable
			}
			uc.logger.Error("NearbyVenues: failed to get position: %v", err)
			return nil, fmt.Errorf("%w: failed to get position: %v", ErrInternal, err)
		}
		position = &geo.Point{Lat: pos.Latitude, Lng: pos.Longitude}
	}

	// 2. Получаем площадки
	venues, err := uc.venueRepo.List(ctx, req.Sport)
	if err != nil {
		uc.logger.Error("NearbyVenues: failed to list venues: %v", err)
		return nil, fmt.Errorf("%w: failed to list venues: %v", ErrInternal, err)
	}

	// 3. Отбрасываем площадки дальше порога, считаем расстояния и ранжируем
	maxDistance := req.MaxDistanceKm
	if maxDistance <= 0 {
		maxDistance = domain.DefaultMaxDistanceKm
	}
	ranked := rankByDistance(venues, position, maxDistance)

	// 4. Отдаем верхушку списка
	limit := req.Limit
	if limit == 0 {
		limit = domain.NearbyVenuesLimit
	}
	if limit != NoLimit && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	uc.logger.Info("NearbyVenues: returning %d venues", len(ranked))

	return &Response{Venues: ranked}, nil
}

// rankByDistance сортирует площадки по расстоянию до клиента, отбрасывая
// те, что дальше maxDistanceKm. Площадки без координат получают +Inf и
// отфильтровываются вместе с дальними.
// Сортировка стабильная: при равных расстояниях сохраняется исходный
// порядок из репозитория
func rankByDistance(venues []*domain.Venue, position *geo.Point, maxDistanceKm float64) []VenueWithDistance {
	ranked := make([]VenueWithDistance, 0, len(venues))
	for _, v := range venues {
		distance := geo.Distance(position, v.Coordinates)
		if distance > maxDistanceKm {
			continue
		}
		ranked = append(ranked, VenueWithDistance{
			Venue:      v,
			DistanceKm: distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
