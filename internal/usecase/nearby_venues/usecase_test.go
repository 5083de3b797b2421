package nearby_venues

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/integrations/geoprovider"
	"github.com/m04kA/SVP-BookingService/pkg/geo"
)

type fakeVenueRepo struct {
	venues []*domain.Venue
	err    error
}

func (f *fakeVenueRepo) List(_ context.Context, _ *domain.Sport) ([]*domain.Venue, error) {
	return f.venues, f.err
}

type fakeGeoClient struct {
	position *geoprovider.Position
	err      error
	called   bool
}

func (f *fakeGeoClient) GetCurrentPositionWithGracefulDegradation(_ context.Context, _ string) (*geoprovider.Position, error) {
	f.called = true
	return f.position, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func venueAt(id int64, lat, lng float64) *domain.Venue {
	return &domain.Venue{
		ID:          id,
		Sport:       domain.SportFootball,
		Coordinates: &geo.Point{Lat: lat, Lng: lng},
	}
}

func TestExecute_RanksByDistance(t *testing.T) {
	// Клиент в центре Эр-Рияда, площадки на разном удалении
	venues := &fakeVenueRepo{venues: []*domain.Venue{
		venueAt(1, 25.5, 46.7),
		venueAt(2, 24.72, 46.68),
		venueAt(3, 24.9, 46.7),
	}}
	uc := NewUseCase(venues, &fakeGeoClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Position:      &geo.Point{Lat: 24.7136, Lng: 46.6753},
		MaxDistanceKm: 100,
	})
	require.NoError(t, err)

	require.Len(t, resp.Venues, 3)
	assert.Equal(t, int64(2), resp.Venues[0].Venue.ID)
	assert.Equal(t, int64(3), resp.Venues[1].Venue.ID)
	assert.Equal(t, int64(1), resp.Venues[2].Venue.ID)

	// Расстояния неубывающие
	assert.LessOrEqual(t, resp.Venues[0].DistanceKm, resp.Venues[1].DistanceKm)
	assert.LessOrEqual(t, resp.Venues[1].DistanceKm, resp.Venues[2].DistanceKm)
}

func TestExecute_DefaultLimit(t *testing.T) {
	var list []*domain.Venue
	for i := int64(1); i <= 8; i++ {
		list = append(list, venueAt(i, 24.7+float64(i)*0.01, 46.68))
	}
	uc := NewUseCase(&fakeVenueRepo{venues: list}, &fakeGeoClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Position: &geo.Point{Lat: 24.7136, Lng: 46.6753},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Venues, domain.NearbyVenuesLimit)
}

func TestExecute_DefaultThresholdFiltersFarVenues(t *testing.T) {
	// Клиент в Эр-Рияде: площадка в Джидде (~845 км) не попадает в выдачу
	venues := &fakeVenueRepo{venues: []*domain.Venue{
		venueAt(1, 21.4858, 39.1925),
		venueAt(2, 24.72, 46.68),
	}}
	uc := NewUseCase(venues, &fakeGeoClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Position: &geo.Point{Lat: 24.7136, Lng: 46.6753},
	})
	require.NoError(t, err)

	require.Len(t, resp.Venues, 1)
	assert.Equal(t, int64(2), resp.Venues[0].Venue.ID)
	assert.LessOrEqual(t, resp.Venues[0].DistanceKm, domain.DefaultMaxDistanceKm)
}

func TestExecute_CustomThreshold(t *testing.T) {
	venues := &fakeVenueRepo{venues: []*domain.Venue{
		venueAt(1, 24.9, 46.7),   // ~21 км
		venueAt(2, 24.72, 46.68), // ~0.9 км
	}}
	uc := NewUseCase(venues, &fakeGeoClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Position:      &geo.Point{Lat: 24.7136, Lng: 46.6753},
		MaxDistanceKm: 5,
	})
	require.NoError(t, err)

	require.Len(t, resp.Venues, 1)
	assert.Equal(t, int64(2), resp.Venues[0].Venue.ID)
}

func TestExecute_VenuesWithoutCoordinatesExcluded(t *testing.T) {
	noCoords := &domain.Venue{ID: 10, Sport: domain.SportFootball}
	venues := &fakeVenueRepo{venues: []*domain.Venue{
		noCoords,
		venueAt(1, 24.72, 46.68),
	}}
	uc := NewUseCase(venues, &fakeGeoClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Position: &geo.Point{Lat: 24.7136, Lng: 46.6753},
	})
	require.NoError(t, err)

	// Площадка без координат имеет расстояние +Inf и порог не проходит
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, int64(1), resp.Venues[0].Venue.ID)
}

func TestExecute_NoLimitReturnsAllWithinThreshold(t *testing.T) {
	var list []*domain.Venue
	for i := int64(1); i <= 8; i++ {
		list = append(list, venueAt(i, 24.7+float64(i)*0.01, 46.68))
	}
	uc := NewUseCase(&fakeVenueRepo{venues: list}, &fakeGeoClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Position:      &geo.Point{Lat: 24.7136, Lng: 46.6753},
		MaxDistanceKm: 50,
		Limit:         NoLimit,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Venues, 8)
}

func TestExecute_PositionFromGeoService(t *testing.T) {
	geoClient := &fakeGeoClient{position: &geoprovider.Position{Latitude: 24.7136, Longitude: 46.6753}}
	uc := NewUseCase(&fakeVenueRepo{venues: []*domain.Venue{venueAt(1, 24.72, 46.68)}}, geoClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.True(t, geoClient.called)
	require.Len(t, resp.Venues, 1)
	assert.False(t, math.IsInf(resp.Venues[0].DistanceKm, 1))
}

func TestExecute_ExplicitPositionSkipsGeoService(t *testing.T) {
	geoClient := &fakeGeoClient{}
	uc := NewUseCase(&fakeVenueRepo{}, geoClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Position:  &geo.Point{Lat: 24.7136, Lng: 46.6753},
		SessionID: "sess-1",
	})
	require.NoError(t, err)

	assert.False(t, geoClient.called)
}

func TestExecute_PositionUnavailable(t *testing.T) {
	geoClient := &fakeGeoClient{err: geoprovider.ErrPositionUnavailable}
	uc := NewUseCase(&fakeVenueRepo{}, geoClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestExecute_NoPositionNoSession(t *testing.T) {
	uc := NewUseCase(&fakeVenueRepo{}, &fakeGeoClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
