package discounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	discountRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/discount"
	"github.com/m04kA/SVP-BookingService/internal/service/discounts/models"
)

// Service сервис для работы с промокодами
type Service struct {
	discountRepo DiscountRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(discountRepo DiscountRepository, logger Logger) *Service {
	return &Service{
		discountRepo: discountRepo,
		logger:       logger,
	}
}

// Create создает новый промокод
func (s *Service) Create(ctx context.Context, req *models.CreateDiscountRequest) (*models.DiscountResponse, error) {
	s.logger.Info("Create: creating discount %q, percent=%d", req.Code, req.Percent)

	code := strings.TrimSpace(req.Code)
	if code == "" {
		s.logger.Warn("Create: empty discount code")
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	if !domain.IsValidPercent(req.Percent) {
		s.logger.Warn("Create: invalid percent %d", req.Percent)
		return nil, fmt.Errorf("%w: percent must be between %d and %d",
			ErrInvalidInput, domain.MinDiscountPercent, domain.MaxDiscountPercent)
	}

	discount := &domain.DiscountCode{
		Code:    code,
		Percent: req.Percent,
	}

	created, err := s.discountRepo.Create(ctx, discount)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: discount id=%d created", created.ID)
	return models.FromDomainDiscount(created), nil
}

// Lookup ищет промокод по точному совпадению кода.
// Поиск чувствителен к регистру: "welcome10" и "WELCOME10" разные коды
func (s *Service) Lookup(ctx context.Context, code string) (*models.DiscountResponse, error) {
	s.logger.Info("Lookup: looking up discount %q", code)

	discount, err := s.discountRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("Lookup: discount %q not found", code)
			return nil, ErrDiscountNotFound
		}
		s.logger.Error("Lookup: repository error for %q: %v", code, err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDiscount(discount), nil
}

// List возвращает все промокоды
func (s *Service) List(ctx context.Context) (*models.DiscountListResponse, error) {
	s.logger.Info("List: fetching discounts")

	discounts, err := s.discountRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d discounts", len(discounts))
	return models.FromDomainDiscountList(discounts), nil
}

// Delete удаляет промокод
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting discount id=%d", id)

	if err := s.discountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("Delete: discount id=%d not found", id)
			return ErrDiscountNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: discount id=%d deleted", id)
	return nil
}
