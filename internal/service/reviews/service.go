package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo ReviewRepository
	venueRepo  VenueRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		venueRepo:  venueRepo,
		logger:     logger,
	}
}

// Create создает отзыв для площадки
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for venue=%d, rating=%d", req.VenueID, req.Rating)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Площадка должна существовать
	if _, err := s.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Create: failed to check venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - venue check: %v", ErrInternal, err)
	}

	review := &domain.Review{
		VenueID:    req.VenueID,
		PlayerName: req.PlayerName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d created for venue=%d", created.ID, req.VenueID)
	return models.FromDomainReview(created), nil
}

// ListByVenue возвращает отзывы площадки со средним рейтингом
func (s *Service) ListByVenue(ctx context.Context, venueID int64) (*models.ReviewListResponse, error) {
	s.logger.Info("ListByVenue: fetching reviews for venue=%d", venueID)

	reviews, err := s.reviewRepo.ListByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("ListByVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByVenue: fetched %d reviews for venue=%d", len(reviews), venueID)
	return models.FromDomainReviewList(reviews), nil
}

// validateCreateRequest валидирует запрос на создание отзыва
func validateCreateRequest(req *models.CreateReviewRequest) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PlayerName) == "" {
		return fmt.Errorf("%w: playerName is required", ErrInvalidInput)
	}

	if !domain.IsValidRating(req.Rating) {
		return fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if len([]rune(req.Comment)) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}
