package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SVP-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SVP-BookingService/pkg/ptr"
)

// Текст сообщения администратора в чате после подтверждения оплаты
const confirmedMessageText = "Оплата получена, бронирование подтверждено. Ждем вас!"

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo      BookingRepository
	chatRepo         ChatRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	chatRepo ChatRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по площадке, дате и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, venue=%v, date=%v, status=%v", req.VenueID, req.Date, req.Status)

	filter, err := req.ToStorageFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ConfirmPayment подтверждает оплату бронирования.
//
// Переход единственный: pending -> confirmed. Слот занимает только
// подтвержденное бронирование, поэтому перед переходом проверяем, что
// администратор не подтвердил раньше конкурирующее бронирование на тот же
// слот. В этом случае возвращается ErrSlotTaken.
// Повторное подтверждение того же бронирования дает ErrAlreadyConfirmed
// и не создает дубликата сообщений
func (s *Service) ConfirmPayment(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("ConfirmPayment: confirming booking id=%d", id)

	var confirmed *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
		}

		if booking.IsConfirmed() {
			return ErrAlreadyConfirmed
		}

		// Проверяем, что слот еще не занят конкурентом (FOR UPDATE)
		filter := bookingRepo.Filter{
			VenueID: ptr.Ptr(booking.VenueID),
			Date:    ptr.Ptr(booking.BookingDate),
			Time:    ptr.Ptr(booking.StartTime),
			Status:  ptr.Ptr(domain.StatusConfirmed),
		}
		taken, err := s.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
		}
		if len(taken) > 0 {
			return ErrSlotTaken
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: ConfirmPayment - update status: %v", ErrInternal, err)
		}

		// Сообщение администратора в чате для оплат переводом
		if booking.PaymentMethod == domain.MethodManual {
			msg := &domain.ChatMessage{
				BookingID: booking.ID,
				Sender:    domain.SenderAdmin,
				Text:      confirmedMessageText,
			}
			if _, err := s.chatRepo.Create(txCtx, msg); err != nil {
				return fmt.Errorf("%w: ConfirmPayment - seed chat message: %v", ErrInternal, err)
			}
		}

		notification := &domain.Notification{
			Text: fmt.Sprintf("Бронирование #%d подтверждено: %s, %s %s",
				booking.ID, booking.Venue.Name, booking.BookingDate.Format(domain.DateFormat), booking.StartTime),
		}
		if _, err := s.notificationRepo.Create(txCtx, notification); err != nil {
			return fmt.Errorf("%w: ConfirmPayment - create notification: %v", ErrInternal, err)
		}

		booking.PaymentStatus = domain.StatusConfirmed
		confirmed = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("ConfirmPayment: booking id=%d not found", id)
		case errors.Is(err, ErrAlreadyConfirmed):
			s.logger.Warn("ConfirmPayment: booking id=%d already confirmed", id)
		case errors.Is(err, ErrSlotTaken):
			s.logger.Warn("ConfirmPayment: slot for booking id=%d taken by competitor", id)
		default:
			s.logger.Error("ConfirmPayment: failed for booking id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("ConfirmPayment: booking id=%d confirmed", id)
	return models.FromDomainBooking(confirmed), nil
}

// Delete удаляет бронирование вместе с его чатом в одной транзакции
// и оставляет администратору уведомление об удалении
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.chatRepo.DeleteByBooking(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - delete chat: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		notification := &domain.Notification{
			Text: fmt.Sprintf("Бронирование #%d удалено: %s, %s %s",
				booking.ID, booking.Venue.Name, booking.BookingDate.Format(domain.DateFormat), booking.StartTime),
		}
		if _, err := s.notificationRepo.Create(txCtx, notification); err != nil {
			return fmt.Errorf("%w: Delete - create notification: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
		} else {
			s.logger.Error("Delete: failed for booking id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}
