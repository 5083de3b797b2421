package chats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SVP-BookingService/internal/service/chats/models"
)

// Service сервис для работы с чатами бронирований
type Service struct {
	chatRepo    ChatRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса чатов
func NewService(chatRepo ChatRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		chatRepo:    chatRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// SendMessage добавляет сообщение в чат бронирования.
// Чат append-only: сообщения не редактируются и не удаляются по одному
func (s *Service) SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("SendMessage: booking=%d, sender=%s", req.BookingID, req.Sender)

	if err := validateSendRequest(req); err != nil {
		s.logger.Warn("SendMessage: validation failed: %v", err)
		return nil, err
	}

	// Бронирование должно существовать
	if _, err := s.bookingRepo.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SendMessage: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("SendMessage: failed to check booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: SendMessage - booking check: %v", ErrInternal, err)
	}

	message := &domain.ChatMessage{
		BookingID: req.BookingID,
		Sender:    domain.ChatSender(req.Sender),
		Text:      req.Text,
		ImageURL:  req.ImageURL,
	}

	created, err := s.chatRepo.Create(ctx, message)
	if err != nil {
		s.logger.Error("SendMessage: repository error: %v", err)
		return nil, fmt.Errorf("%w: SendMessage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SendMessage: message id=%d created in booking=%d", created.ID, req.BookingID)
	return models.FromDomainMessage(created), nil
}

// ListByBooking возвращает сообщения чата в хронологическом порядке
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) (*models.MessageListResponse, error) {
	s.logger.Info("ListByBooking: fetching messages for booking=%d", bookingID)

	// Бронирование должно существовать
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ListByBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ListByBooking: failed to check booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - booking check: %v", ErrInternal, err)
	}

	messages, err := s.chatRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByBooking: fetched %d messages for booking=%d", len(messages), bookingID)
	return models.FromDomainMessageList(messages), nil
}

// validateSendRequest валидирует запрос на отправку сообщения
func validateSendRequest(req *models.SendMessageRequest) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if !domain.ChatSender(req.Sender).IsValid() {
		return fmt.Errorf("%w: unknown sender %q", ErrInvalidInput, req.Sender)
	}

	// Сообщение должно содержать текст или скриншот оплаты
	if strings.TrimSpace(req.Text) == "" && req.ImageURL == nil {
		return fmt.Errorf("%w: text or imageUrl is required", ErrInvalidInput)
	}

	if len([]rune(req.Text)) > domain.MaxChatTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, domain.MaxChatTextLength)
	}

	return nil
}
