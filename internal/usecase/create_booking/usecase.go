package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	discountRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/discount"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	paymentClient "github.com/m04kA/SVP-BookingService/internal/integrations/payment"
	"github.com/m04kA/SVP-BookingService/pkg/ptr"
)

// Текст первого сообщения в чате бронирования при оплате переводом.
// Сумма подставляется в валюте шлюза
const welcomeMessageFormat = "Здравствуйте! Для подтверждения бронирования переведите %.2f SAR и отправьте скриншот оплаты в этот чат."

// UseCase use case для создания бронирования
type UseCase struct {
	venueRepo        VenueRepository
	bookingRepo      BookingRepository
	discountRepo     DiscountRepository
	chatRepo         ChatRepository
	notificationRepo NotificationRepository
	paymentClient    PaymentClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	discountRepo DiscountRepository,
	chatRepo ChatRepository,
	notificationRepo NotificationRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:        venueRepo,
		bookingRepo:      bookingRepo,
		discountRepo:     discountRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
		paymentClient:    paymentClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
// при одновременном бронировании одного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: venue=%d, player=%q, date=%s, time=%s, method=%s",
		req.VenueID, req.PlayerName, req.Date.Format(domain.DateFormat), req.StartTime, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата бронирования не может быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Проверяем, что слот попадает в рабочие часы площадки
	if err := validateSlotTime(venue, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 5. Считаем цену слота по пиковому окну
	hour, err := req.StartTime.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse slot hour: %v", ErrInternal, err)
	}
	basePrice := domain.PriceForHour(venue, hour)

	// 6. Применяем промокод, если указан
	var discount *domain.DiscountCode
	if req.DiscountCode != nil && *req.DiscountCode != "" {
		discount, err = uc.discountRepo.GetByCode(ctx, *req.DiscountCode)
		if err != nil {
			if errors.Is(err, discountRepo.ErrDiscountNotFound) {
				uc.logger.Warn("CreateBooking: discount code %q not found", *req.DiscountCode)
				return nil, ErrDiscountNotFound
			}
			uc.logger.Error("CreateBooking: failed to get discount %q: %v", *req.DiscountCode, err)
			return nil, fmt.Errorf("%w: failed to get discount: %v", ErrInternal, err)
		}
		uc.logger.Info("CreateBooking: applying discount %q (%d%%)", discount.Code, discount.Percent)
	}
	finalPrice := domain.ApplyDiscount(basePrice, discount)

	// 7. Для онлайн-оплаты списываем средства до записи в БД.
	// Шлюз работает в своей валюте, сумма конвертируется по фиксированному курсу
	var transactionID *string
	status := domain.StatusPendingPaymentConfirmation

	if req.PaymentMethod == domain.MethodOnline {
		txID, err := uc.paymentClient.Charge(ctx, paymentClient.ChargeRequest{
			Amount:      domain.ToPaymentCurrency(finalPrice),
			Currency:    "SAR",
			Description: fmt.Sprintf("Booking at %s, %s %s", venue.Name, req.Date.Format(domain.DateFormat), req.StartTime),
		})
		if err != nil {
			switch {
			case errors.Is(err, paymentClient.ErrPaymentDeclined):
				uc.logger.Warn("CreateBooking: payment declined for venue=%d", req.VenueID)
				return nil, ErrPaymentDeclined
			case errors.Is(err, paymentClient.ErrPaymentCancelled):
				uc.logger.Info("CreateBooking: payment cancelled for venue=%d", req.VenueID)
				return nil, ErrPaymentCancelled
			default:
				uc.logger.Error("CreateBooking: payment failed: %v", err)
				return nil, fmt.Errorf("%w: payment failed: %v", ErrInternal, err)
			}
		}
		transactionID = &txID
		status = domain.StatusConfirmed
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем подтвержденные бронирования на этот слот с блокировкой (FOR UPDATE).
		// Только подтвержденные бронирования занимают слот: несколько гостей
		// могут ждать ручного подтверждения одного и того же слота
		filter := bookingRepo.Filter{
			VenueID: ptr.Ptr(req.VenueID),
			Date:    ptr.Ptr(req.Date),
			Time:    ptr.Ptr(req.StartTime),
			Status:  ptr.Ptr(domain.StatusConfirmed),
		}

		taken, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if len(taken) > 0 {
			uc.logger.Warn("CreateBooking: slot %s already confirmed for venue=%d, date=%s",
				req.StartTime, req.VenueID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 8.2. Создаем бронирование со снимком площадки
		booking := &domain.Booking{
			VenueID:       req.VenueID,
			Venue:         venue.Snapshot(),
			PlayerName:    req.PlayerName,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			BasePrice:     basePrice,
			DiscountCode:  req.DiscountCode,
			FinalPrice:    finalPrice,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: status,
			TransactionID: transactionID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 8.3. Для оплаты переводом заводим чат с приветственным сообщением администратора
		if req.PaymentMethod == domain.MethodManual {
			welcome := &domain.ChatMessage{
				BookingID: created.ID,
				Sender:    domain.SenderAdmin,
				Text:      fmt.Sprintf(welcomeMessageFormat, domain.ToPaymentCurrency(finalPrice)),
			}
			if _, err := uc.chatRepo.Create(txCtx, welcome); err != nil {
				uc.logger.Error("CreateBooking: failed to seed chat: %v", err)
				return fmt.Errorf("%w: failed to seed chat: %v", ErrInternal, err)
			}
		}

		// 8.4. Уведомление администратору о новом бронировании
		notification := &domain.Notification{
			Text: fmt.Sprintf("Новое бронирование #%d: %s, %s %s, %s",
				created.ID, venue.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.PlayerName),
		}
		if _, err := uc.notificationRepo.Create(txCtx, notification); err != nil {
			uc.logger.Error("CreateBooking: failed to create notification: %v", err)
			return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.PaymentStatus)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		VenueID:         result.VenueID,
		PlayerName:      result.PlayerName,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.Venue.SlotDurationMinutes,
		BasePrice:       result.BasePrice,
		DiscountCode:    result.DiscountCode,
		FinalPrice:      result.FinalPrice,
		PaymentMethod:   result.PaymentMethod,
		PaymentStatus:   result.PaymentStatus,
		TransactionID:   result.TransactionID,
		VenueName:       result.Venue.Name,
		VenueLocation:   result.Venue.Location,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
