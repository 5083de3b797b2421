package reviews

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/internal/service/reviews/models"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, r *domain.Review) (*domain.Review, error) {
	created := *r
	created.ID = int64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, &created)
	return &created, nil
}

func (f *fakeReviewRepo) ListByVenue(_ context.Context, _ int64) ([]*domain.Review, error) {
	return f.reviews, nil
}

type fakeVenueRepo struct {
	exists bool
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if !f.exists {
		return nil, venueRepo.ErrVenueNotFound
	}
	return &domain.Venue{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Valid(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, &fakeVenueRepo{exists: true}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		VenueID:    1,
		PlayerName: "Фахад",
		Rating:     5,
		Comment:    "Отличное поле",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	require.Len(t, repo.reviews, 1)
}

func TestCreate_VenueNotFound(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeVenueRepo{exists: false}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		VenueID:    42,
		PlayerName: "Фахад",
		Rating:     4,
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreate_InvalidRating(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeVenueRepo{exists: true}, nopLogger{})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
			VenueID:    1,
			PlayerName: "Фахад",
			Rating:     rating,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "rating=%d", rating)
	}
}

func TestCreate_CommentTooLong(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeVenueRepo{exists: true}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		VenueID:    1,
		PlayerName: "Фахад",
		Rating:     4,
		Comment:    strings.Repeat("a", domain.MaxCommentLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByVenue_AverageRating(t *testing.T) {
	repo := &fakeReviewRepo{reviews: []*domain.Review{
		{ID: 1, Rating: 5},
		{ID: 2, Rating: 3},
		{ID: 3, Rating: 4},
	}}
	svc := NewService(repo, &fakeVenueRepo{exists: true}, nopLogger{})

	resp, err := svc.ListByVenue(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.InDelta(t, 4.0, resp.AverageRating, 1e-9)
}

func TestListByVenue_Empty(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeVenueRepo{exists: true}, nopLogger{})

	resp, err := svc.ListByVenue(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, 0.0, resp.AverageRating)
}
