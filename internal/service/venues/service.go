package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/internal/service/venues/models"
)

// Service сервис для работы с площадками
type Service struct {
	venueRepo  VenueRepository
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, reviewRepo ReviewRepository, logger Logger) *Service {
	return &Service{
		venueRepo:  venueRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: creating venue %q, sport=%s, city=%s", req.Name, req.Sport, req.City)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	venue := req.ToDomain()

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: venue id=%d created", created.ID)
	return models.FromDomainVenue(created, 0), nil
}

// GetByID получает площадку со средним рейтингом
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	rating, err := s.reviewRepo.AverageByVenue(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get rating for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - rating error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue, rating), nil
}

// List получает площадки с рейтингами, опционально фильтруя по виду спорта
func (s *Service) List(ctx context.Context, sport *string) (*models.VenueListResponse, error) {
	s.logger.Info("List: fetching venues, sport=%v", sport)

	var domainSport *domain.Sport
	if sport != nil && *sport != "" {
		sp := domain.Sport(*sport)
		if !sp.IsValid() {
			s.logger.Warn("List: unknown sport %q", *sport)
			return nil, fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, *sport)
		}
		domainSport = &sp
	}

	venues, err := s.venueRepo.List(ctx, domainSport)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		rating, err := s.reviewRepo.AverageByVenue(ctx, v.ID)
		if err != nil {
			s.logger.Error("List: failed to get rating for venue id=%d: %v", v.ID, err)
			return nil, fmt.Errorf("%w: List - rating error: %v", ErrInternal, err)
		}
		result = append(result, *models.FromDomainVenue(v, rating))
	}

	s.logger.Info("List: fetched %d venues", len(result))
	return &models.VenueListResponse{Venues: result, Total: len(result)}, nil
}

// ListByOwner получает площадки владельца
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) (*models.VenueListResponse, error) {
	s.logger.Info("ListByOwner: fetching venues for owner=%d", ownerID)

	venues, err := s.venueRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	result := make([]models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		rating, err := s.reviewRepo.AverageByVenue(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - rating error: %v", ErrInternal, err)
		}
		result = append(result, *models.FromDomainVenue(v, rating))
	}

	return &models.VenueListResponse{Venues: result, Total: len(result)}, nil
}

// Delete удаляет площадку.
// Существующие бронирования не трогаем: их снимки площадки остаются читаемыми
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting venue id=%d", id)

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Delete: venue id=%d not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: venue id=%d deleted", id)
	return nil
}

// validateCreateRequest валидирует запрос на создание площадки
func validateCreateRequest(req *models.CreateVenueRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	if !domain.Sport(req.Sport).IsValid() {
		return fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, req.Sport)
	}

	if req.PriceOffPeak < 0 || req.PricePeak < 0 {
		return fmt.Errorf("%w: prices must be non-negative", ErrInvalidInput)
	}

	opening := domain.DefaultOpeningHour
	if req.OpeningHour != nil {
		opening = *req.OpeningHour
	}
	closing := domain.DefaultClosingHour
	if req.ClosingHour != nil {
		closing = *req.ClosingHour
	}

	if opening < domain.MinHour || closing > domain.MaxHour || opening >= closing {
		return fmt.Errorf("%w: invalid operating window %d-%d", ErrInvalidInput, opening, closing)
	}

	return nil
}
