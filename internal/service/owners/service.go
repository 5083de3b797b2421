package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	ownerRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/owner"
	"github.com/m04kA/SVP-BookingService/internal/service/owners/models"
)

// Service сервис для работы с владельцами площадок
type Service struct {
	ownerRepo OwnerRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса владельцев
func NewService(ownerRepo OwnerRepository, logger Logger) *Service {
	return &Service{
		ownerRepo: ownerRepo,
		logger:    logger,
	}
}

// Register регистрирует заявку владельца. Заявка попадает в статус pending
// и ждет одобрения администратора
func (s *Service) Register(ctx context.Context, req *models.RegisterOwnerRequest) (*models.OwnerResponse, error) {
	s.logger.Info("Register: registering owner %q", req.Name)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	owner := &domain.Owner{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: domain.OwnerStatusPending,
	}

	created, err := s.ownerRepo.Create(ctx, owner)
	if err != nil {
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: owner id=%d registered", created.ID)
	return models.FromDomainOwner(created), nil
}

// Approve одобряет заявку владельца. Повторное одобрение дает ErrAlreadyApproved
func (s *Service) Approve(ctx context.Context, id int64) (*models.OwnerResponse, error) {
	s.logger.Info("Approve: approving owner id=%d", id)

	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			s.logger.Warn("Approve: owner id=%d not found", id)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("Approve: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	if owner.IsApproved() {
		s.logger.Warn("Approve: owner id=%d already approved", id)
		return nil, ErrAlreadyApproved
	}

	if err := s.ownerRepo.UpdateStatus(ctx, id, domain.OwnerStatusApproved); err != nil {
		s.logger.Error("Approve: failed to update status for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Approve - update status: %v", ErrInternal, err)
	}

	owner.Status = domain.OwnerStatusApproved

	s.logger.Info("Approve: owner id=%d approved", id)
	return models.FromDomainOwner(owner), nil
}

// List возвращает владельцев, опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.OwnerListResponse, error) {
	s.logger.Info("List: fetching owners, status=%v", status)

	var domainStatus *domain.OwnerStatus
	if status != nil && *status != "" {
		st := domain.OwnerStatus(*status)
		if st != domain.OwnerStatusPending && st != domain.OwnerStatusApproved {
			s.logger.Warn("List: unknown status %q", *status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
		}
		domainStatus = &st
	}

	owners, err := s.ownerRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d owners", len(owners))
	return models.FromDomainOwnerList(owners), nil
}

// validateRegisterRequest валидирует заявку владельца
func validateRegisterRequest(req *models.RegisterOwnerRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	return nil
}
