package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	discountRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/discount"
	"github.com/m04kA/SVP-BookingService/internal/integrations/payment"
	"github.com/m04kA/SVP-BookingService/pkg/ptr"
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
	taken   []*domain.Booking
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = 101
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ bookingRepo.Filter) ([]*domain.Booking, error) {
	return f.taken, nil
}

type fakeDiscountRepo struct {
	discount *domain.DiscountCode
	err      error
}

func (f *fakeDiscountRepo) GetByCode(_ context.Context, _ string) (*domain.DiscountCode, error) {
	return f.discount, f.err
}

type fakeChatRepo struct {
	messages []*domain.ChatMessage
}

func (f *fakeChatRepo) Create(_ context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	created := *m
	created.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, &created)
	return &created, nil
}

type fakeNotificationRepo struct {
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	created := *n
	created.ID = int64(len(f.notifications) + 1)
	f.notifications = append(f.notifications, &created)
	return &created, nil
}

type fakePaymentClient struct {
	txID   string
	err    error
	charge *payment.ChargeRequest
	called bool
}

func (f *fakePaymentClient) Charge(_ context.Context, req payment.ChargeRequest) (string, error) {
	f.called = true
	f.charge = &req
	return f.txID, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	venues        *fakeVenueRepo
	bookings      *fakeBookingRepo
	discounts     *fakeDiscountRepo
	chats         *fakeChatRepo
	notifications *fakeNotificationRepo
	payments      *fakePaymentClient
	uc            *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		venues: &fakeVenueRepo{venue: &domain.Venue{
			ID:                  1,
			Sport:               domain.SportFootball,
			Name:                "Al Noor Pitch",
			Location:            "King Fahd Rd, Riyadh",
			OpeningHour:         16,
			ClosingHour:         23,
			SlotDurationMinutes: 60,
			PriceOffPeak:        100,
			PricePeak:           150,
		}},
		bookings:      &fakeBookingRepo{},
		discounts:     &fakeDiscountRepo{err: discountRepo.ErrDiscountNotFound},
		chats:         &fakeChatRepo{},
		notifications: &fakeNotificationRepo{},
		payments:      &fakePaymentClient{txID: "tx-001"},
	}
	f.uc = NewUseCase(f.venues, f.bookings, f.discounts, f.chats, f.notifications, f.payments, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTime{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		VenueID:       1,
		PlayerName:    "Фахад",
		Date:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "19:00",
		PaymentMethod: domain.MethodManual,
	}
}

func TestExecute_ManualPayment(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Оплата переводом: бронь ждет подтверждения, шлюз не трогаем
	assert.Equal(t, domain.StatusPendingPaymentConfirmation, resp.PaymentStatus)
	assert.Nil(t, resp.TransactionID)
	assert.False(t, f.payments.called)

	// Пиковый час 19:00 тарифицируется по пиковой цене
	assert.Equal(t, 150.0, resp.BasePrice)
	assert.Equal(t, 150.0, resp.FinalPrice)

	// Чат открывается приветственным сообщением администратора с суммой в SAR
	require.Len(t, f.chats.messages, 1)
	assert.Equal(t, domain.SenderAdmin, f.chats.messages[0].Sender)
	assert.Contains(t, f.chats.messages[0].Text, "40.00 SAR")

	require.Len(t, f.notifications.notifications, 1)
	assert.Contains(t, f.notifications.notifications[0].Text, "Новое бронирование #101")
}

func TestExecute_OnlinePayment(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.PaymentMethod = domain.MethodOnline

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, resp.PaymentStatus)
	require.NotNil(t, resp.TransactionID)
	assert.Equal(t, "tx-001", *resp.TransactionID)

	// Шлюз получает сумму в своей валюте по курсу 3.75
	require.NotNil(t, f.payments.charge)
	assert.InDelta(t, 40.0, f.payments.charge.Amount, 1e-9)
	assert.Equal(t, "SAR", f.payments.charge.Currency)

	// Онлайн-оплата не заводит чат
	assert.Empty(t, f.chats.messages)
}

func TestExecute_DiscountApplied(t *testing.T) {
	f := newFixture()
	f.discounts.discount = &domain.DiscountCode{Code: "WELCOME10", Percent: 10}
	f.discounts.err = nil

	req := validRequest()
	req.StartTime = "16:00"
	req.DiscountCode = ptr.Ptr("WELCOME10")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.BasePrice)
	assert.InDelta(t, 90.0, resp.FinalPrice, 1e-9)
}

func TestExecute_DiscountNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DiscountCode = ptr.Ptr("NOPE")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_SlotAlreadyConfirmed(t *testing.T) {
	f := newFixture()
	f.bookings.taken = []*domain.Booking{
		{StartTime: "19:00", PaymentStatus: domain.StatusConfirmed},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_PaymentDeclined(t *testing.T) {
	f := newFixture()
	f.payments.err = payment.ErrPaymentDeclined

	req := validRequest()
	req.PaymentMethod = domain.MethodOnline

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	// Отклоненный платеж не оставляет следов в БД
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.notifications.notifications)
}

func TestExecute_SlotOutsideOperatingHours(t *testing.T) {
	f := newFixture()

	for _, startTime := range []string{"15:00", "23:00"} {
		req := validRequest()
		req.StartTime = types.TimeString(startTime)

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "startTime=%s", startTime)
	}
}

func TestExecute_MidHourStartRejected(t *testing.T) {
	f := newFixture()

	// Слоты начинаются строго в начале часа, "16:30" не попадает в сетку
	req := validRequest()
	req.StartTime = types.TimeString("16:30")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_ValidationFailures(t *testing.T) {
	f := newFixture()

	t.Run("empty player name", func(t *testing.T) {
		req := validRequest()
		req.PlayerName = "   "
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, f.bookings.created)
	})

	t.Run("date in the past", func(t *testing.T) {
		req := validRequest()
		req.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		req := validRequest()
		req.PaymentMethod = "cash"
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_VenueSnapshotStored(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Al Noor Pitch", resp.VenueName)
	assert.Equal(t, "King Fahd Rd, Riyadh", resp.VenueLocation)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, "Al Noor Pitch", f.bookings.created.Venue.Name)
}
