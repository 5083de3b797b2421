package tournaments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	tournamentRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/tournament"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments/models"
)

type fakeTournamentRepo struct {
	byID    map[int64]*domain.Tournament
	created *domain.Tournament
}

func (f *fakeTournamentRepo) Create(_ context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	created := *t
	created.ID = 1
	f.created = &created
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeTournamentRepo) GetByID(_ context.Context, id int64) (*domain.Tournament, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, tournamentRepo.ErrTournamentNotFound
	}
	copied := *t
	copied.RegisteredPlayers = append([]string(nil), t.RegisteredPlayers...)
	return &copied, nil
}

func (f *fakeTournamentRepo) List(_ context.Context, _ *domain.Sport) ([]*domain.Tournament, error) {
	result := make([]*domain.Tournament, 0, len(f.byID))
	for _, t := range f.byID {
		result = append(result, t)
	}
	return result, nil
}

func (f *fakeTournamentRepo) UpdatePlayers(_ context.Context, id int64, players []string) error {
	t, ok := f.byID[id]
	if !ok {
		return tournamentRepo.ErrTournamentNotFound
	}
	t.RegisteredPlayers = players
	return nil
}

type fakeVenueRepo struct {
	venue *domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	if f.venue == nil {
		return nil, venueRepo.ErrVenueNotFound
	}
	return f.venue, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(tournaments *fakeTournamentRepo, venues *fakeVenueRepo) *Service {
	return NewService(tournaments, venues, fakeTxManager{}, nopLogger{})
}

func TestCreate_InheritsSportAndSnapshot(t *testing.T) {
	venues := &fakeVenueRepo{venue: &domain.Venue{
		ID:    1,
		Sport: domain.SportVolleyball,
		Name:  "Beach Arena",
		City:  "Jeddah",
	}}
	tournaments := &fakeTournamentRepo{byID: map[int64]*domain.Tournament{}}
	svc := newService(tournaments, venues)

	resp, err := svc.Create(context.Background(), &models.CreateTournamentRequest{
		VenueID: 1,
		Name:    "Summer Cup",
		Date:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Fee:     50,
	})
	require.NoError(t, err)

	// Вид спорта наследуется от площадки, снимок сохраняется
	assert.Equal(t, string(domain.SportVolleyball), resp.Sport)
	assert.Equal(t, "Beach Arena", resp.VenueName)
	assert.NotNil(t, resp.RegisteredPlayers)
	assert.Empty(t, resp.RegisteredPlayers)
}

func TestCreate_VenueNotFound(t *testing.T) {
	svc := newService(&fakeTournamentRepo{byID: map[int64]*domain.Tournament{}}, &fakeVenueRepo{})

	_, err := svc.Create(context.Background(), &models.CreateTournamentRequest{
		VenueID: 42,
		Name:    "Summer Cup",
		Date:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestRegisterPlayer(t *testing.T) {
	tournaments := &fakeTournamentRepo{byID: map[int64]*domain.Tournament{
		1: {ID: 1, Name: "Summer Cup", RegisteredPlayers: []string{"Амир"}},
	}}
	svc := newService(tournaments, &fakeVenueRepo{})

	resp, err := svc.RegisterPlayer(context.Background(), 1, &models.RegisterPlayerRequest{PlayerName: "Фахад"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.PlayersCount)
	assert.Contains(t, resp.RegisteredPlayers, "Фахад")
}

func TestRegisterPlayer_Duplicate(t *testing.T) {
	tournaments := &fakeTournamentRepo{byID: map[int64]*domain.Tournament{
		1: {ID: 1, RegisteredPlayers: []string{"Фахад"}},
	}}
	svc := newService(tournaments, &fakeVenueRepo{})

	_, err := svc.RegisterPlayer(context.Background(), 1, &models.RegisterPlayerRequest{PlayerName: "Фахад"})
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterPlayer_Invalid(t *testing.T) {
	tournaments := &fakeTournamentRepo{byID: map[int64]*domain.Tournament{1: {ID: 1}}}
	svc := newService(tournaments, &fakeVenueRepo{})

	_, err := svc.RegisterPlayer(context.Background(), 1, &models.RegisterPlayerRequest{PlayerName: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterPlayer(context.Background(), 99, &models.RegisterPlayerRequest{PlayerName: "Фахад"})
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestList_UnknownSport(t *testing.T) {
	svc := newService(&fakeTournamentRepo{byID: map[int64]*domain.Tournament{}}, &fakeVenueRepo{})

	sport := "chess"
	_, err := svc.List(context.Background(), &sport)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
