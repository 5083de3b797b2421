package notifications

import (
	"context"
	"errors"
	"fmt"

	notificationRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/notification"
	"github.com/m04kA/SVP-BookingService/internal/service/notifications/models"
)

// Service сервис для работы с уведомлениями администратора
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List возвращает уведомления с количеством непрочитанных
func (s *Service) List(ctx context.Context) (*models.NotificationListResponse, error) {
	s.logger.Info("List: fetching notifications")

	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx)
	if err != nil {
		s.logger.Error("List: failed to count unread: %v", err)
		return nil, fmt.Errorf("%w: List - count unread: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d notifications, %d unread", len(notifications), unread)
	return models.FromDomainNotificationList(notifications, unread), nil
}

// MarkRead помечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	s.logger.Info("MarkRead: marking notification id=%d", id)

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления прочитанными
func (s *Service) MarkAllRead(ctx context.Context) error {
	s.logger.Info("MarkAllRead: marking all notifications")

	if err := s.notificationRepo.MarkAllRead(ctx); err != nil {
		s.logger.Error("MarkAllRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
