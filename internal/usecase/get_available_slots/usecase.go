package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/pkg/ptr"
)

// UseCase use case для получения слотов площадки на день
type UseCase struct {
	venueRepo    VenueRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: venue=%d, date=%s",
		req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Строим все слоты дня с ценами
	slots := buildDaySlots(venue)

	// 4. Получаем подтвержденные бронирования на эту дату
	filter := bookingRepo.Filter{
		VenueID: ptr.Ptr(req.VenueID),
		Date:    ptr.Ptr(req.Date),
		Status:  ptr.Ptr(domain.StatusConfirmed),
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Помечаем занятые и уже начавшиеся слоты
	slots = markBookedSlots(slots, bookings)
	slots = markPastSlots(slots, req.Date, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: generated %d slots for venue=%d, date=%s",
		len(slots), req.VenueID, req.Date.Format(domain.DateFormat))

	return &Response{
		VenueID: req.VenueID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
