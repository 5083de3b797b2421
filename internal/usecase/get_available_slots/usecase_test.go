package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/pkg/types"
)

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	filter   bookingRepo.Filter
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter bookingRepo.Filter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:                  1,
		Sport:               domain.SportFootball,
		Name:                "Al Noor Pitch",
		OpeningHour:         16,
		ClosingHour:         23,
		SlotDurationMinutes: 60,
		PriceOffPeak:        100,
		PricePeak:           150,
	}
}

func TestExecute_FullDay(t *testing.T) {
	venues := &fakeVenueRepo{venue: testVenue()}
	bookings := &fakeBookingRepo{}
	uc := NewUseCase(venues, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Окно 16..23 дает семь почасовых слотов
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[6].StartTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 60, slot.DurationMinutes)
	}

	// Запрашиваются только подтвержденные бронирования
	require.NotNil(t, bookings.filter.Status)
	assert.Equal(t, domain.StatusConfirmed, *bookings.filter.Status)
}

func TestExecute_PeakPricing(t *testing.T) {
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	byTime := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		byTime[s.StartTime] = s
	}

	assert.Equal(t, 100.0, byTime["16:00"].Price)
	assert.False(t, byTime["16:00"].IsPeak)
	assert.Equal(t, 150.0, byTime["18:00"].Price)
	assert.True(t, byTime["18:00"].IsPeak)
	assert.Equal(t, 150.0, byTime["21:00"].Price)
	assert.Equal(t, 100.0, byTime["22:00"].Price)
}

func TestExecute_ConfirmedBookingBlocksSlot(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "18:00", PaymentStatus: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.StartTime == "18:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_PendingBookingDoesNotBlock(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{StartTime: "18:00", PaymentStatus: domain.StatusPendingPaymentConfirmation},
		},
	}
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time {
	return f.t
}

func TestExecute_TodayPastSlotsUnavailable(t *testing.T) {
	venues := &fakeVenueRepo{venue: testVenue()}
	uc := NewUseCase(venues, &fakeBookingRepo{}, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// В 19:30 слоты с 16:00 по 19:00 уже начались, с 20:00 еще доступны
	available := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		available[slot.StartTime] = slot.Available
	}
	assert.False(t, available["16:00"])
	assert.False(t, available["19:00"])
	assert.True(t, available["20:00"])
	assert.True(t, available["22:00"])
}

func TestExecute_FutureDateKeepsAllSlots(t *testing.T) {
	venues := &fakeVenueRepo{venue: testVenue()}
	uc := NewUseCase(venues, &fakeBookingRepo{}, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2026, 3, 13, 21, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_ShortWindow(t *testing.T) {
	venue := testVenue()
	venue.OpeningHour = 16
	venue.ClosingHour = 18
	uc := NewUseCase(&fakeVenueRepo{venue: venue}, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[1].StartTime)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := NewUseCase(&fakeVenueRepo{err: venueRepo.ErrVenueNotFound}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID: 42,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{VenueID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VenueID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	bookings := &fakeBookingRepo{err: errors.New("connection reset")}
	uc := NewUseCase(&fakeVenueRepo{venue: testVenue()}, bookings, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
