package nearby_venues

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	nearbyVenues "github.com/m04kA/SVP-BookingService/internal/usecase/nearby_venues"
	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

const (
	msgInvalidCoordinates  = "некорректные координаты"
	msgInvalidSport        = "некорректный вид спорта"
	msgPositionUnavailable = "геолокация недоступна"
	msgInvalidLimit        = "некорректный лимит"
	msgInvalidDistance     = "некорректная максимальная дистанция"
)

type Handler struct {
	useCase NearbyVenuesUseCase
	logger  Logger
}

func NewHandler(useCase NearbyVenuesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/nearby?lat=24.71&lng=46.67&sport=football&maxDistanceKm=10&limit=5
// Без lat/lng позиция запрашивается у геосервиса по sessionId.
// Явный maxDistanceKm без limit отдает все площадки в пределах порога
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var position *geo.Point
	latStr, lngStr := query.Get("lat"), query.Get("lng")
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			h.logger.Warn("GET /venues/nearby - Invalid coordinates: lat=%q, lng=%q", latStr, lngStr)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)
			return
		}
		position = &geo.Point{Lat: lat, Lng: lng}
	}

	sport, ok := parseSport(query.Get("sport"))
	if !ok {
		h.logger.Warn("GET /venues/nearby - Invalid sport: %q", query.Get("sport"))
		handlers.RespondBadRequest(w, msgInvalidSport)
		return
	}

	maxDistance := 0.0
	if distStr := query.Get("maxDistanceKm"); distStr != "" {
		parsed, err := strconv.ParseFloat(distStr, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /venues/nearby - Invalid max distance: %q", distStr)
			handlers.RespondBadRequest(w, msgInvalidDistance)
			return
		}
		maxDistance = parsed
	}

	// Явный фильтр по расстоянию не обрезается до топ-5
	limit := 0
	if maxDistance > 0 {
		limit = nearbyVenues.NoLimit
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /venues/nearby - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &nearbyVenues.Request{
		Position:      position,
		SessionID:     query.Get("sessionId"),
		Sport:         sport,
		MaxDistanceKm: maxDistance,
		Limit:         limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, nearbyVenues.ErrPositionUnavailable):
			h.logger.Warn("GET /venues/nearby - Position unavailable")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPositionUnavailable)

		case errors.Is(err, nearbyVenues.ErrInvalidInput):
			h.logger.Warn("GET /venues/nearby - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)

		default:
			h.logger.Error("GET /venues/nearby - Failed to find venues: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/nearby - Found %d venues", len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
