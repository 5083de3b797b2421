package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SVP-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	byID          map[int64]*domain.Booking
	taken         []*domain.Booking
	updatedStatus *domain.PaymentStatus
	deletedID     *int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ bookingRepo.Filter) ([]*domain.Booking, error) {
	return f.taken, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.PaymentStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus = &status
	f.byID[id].PaymentStatus = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.byID, id)
	f.deletedID = &id
	return nil
}

type fakeChatRepo struct {
	messages       []*domain.ChatMessage
	deletedBooking *int64
}

func (f *fakeChatRepo) Create(_ context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	created := *m
	created.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, &created)
	return &created, nil
}

func (f *fakeChatRepo) DeleteByBooking(_ context.Context, bookingID int64) error {
	f.deletedBooking = &bookingID
	return nil
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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:      id,
		VenueID: 1,
		Venue: domain.Venue{
			Name: "Al Noor Pitch",
		},
		PlayerName:    "Фахад",
		BookingDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "19:00",
		PaymentMethod: domain.MethodManual,
		PaymentStatus: domain.StatusPendingPaymentConfirmation,
	}
}

func newService(bookings *fakeBookingRepo, chats *fakeChatRepo, notifications *fakeNotificationRepo) *Service {
	return NewService(bookings, chats, notifications, fakeTxManager{}, nopLogger{})
}

func TestConfirmPayment_Success(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking(1)}}
	chats := &fakeChatRepo{}
	notifications := &fakeNotificationRepo{}
	svc := newService(bookings, chats, notifications)

	resp, err := svc.ConfirmPayment(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.PaymentStatus)
	require.NotNil(t, bookings.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *bookings.updatedStatus)

	// Гостю в чат уходит сообщение о подтверждении
	require.Len(t, chats.messages, 1)
	assert.Equal(t, domain.SenderAdmin, chats.messages[0].Sender)

	require.Len(t, notifications.notifications, 1)
	assert.Contains(t, notifications.notifications[0].Text, "Бронирование #1 подтверждено")
}

func TestConfirmPayment_NotFound(t *testing.T) {
	svc := newService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, &fakeChatRepo{}, &fakeNotificationRepo{})

	_, err := svc.ConfirmPayment(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmPayment_AlreadyConfirmed(t *testing.T) {
	booking := pendingBooking(1)
	booking.PaymentStatus = domain.StatusConfirmed

	chats := &fakeChatRepo{}
	notifications := &fakeNotificationRepo{}
	svc := newService(&fakeBookingRepo{byID: map[int64]*domain.Booking{1: booking}}, chats, notifications)

	_, err := svc.ConfirmPayment(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	// Без дубликатов сообщений и уведомлений
	assert.Empty(t, chats.messages)
	assert.Empty(t, notifications.notifications)
}

func TestConfirmPayment_SlotTakenByCompetitor(t *testing.T) {
	// Два гостя дошли до подтверждения одного слота, конкурента подтвердили раньше
	bookings := &fakeBookingRepo{
		byID:  map[int64]*domain.Booking{1: pendingBooking(1)},
		taken: []*domain.Booking{{ID: 2, PaymentStatus: domain.StatusConfirmed, StartTime: "19:00"}},
	}
	svc := newService(bookings, &fakeChatRepo{}, &fakeNotificationRepo{})

	_, err := svc.ConfirmPayment(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, bookings.updatedStatus)
}

func TestConfirmPayment_OnlineBookingSkipsChat(t *testing.T) {
	booking := pendingBooking(1)
	booking.PaymentMethod = domain.MethodOnline

	chats := &fakeChatRepo{}
	svc := newService(&fakeBookingRepo{byID: map[int64]*domain.Booking{1: booking}}, chats, &fakeNotificationRepo{})

	_, err := svc.ConfirmPayment(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, chats.messages)
}

func TestDelete_RemovesChatWithBooking(t *testing.T) {
	bookings := &fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking(1)}}
	chats := &fakeChatRepo{}
	notifications := &fakeNotificationRepo{}
	svc := newService(bookings, chats, notifications)

	require.NoError(t, svc.Delete(context.Background(), 1))

	require.NotNil(t, chats.deletedBooking)
	assert.Equal(t, int64(1), *chats.deletedBooking)
	require.NotNil(t, bookings.deletedID)
	assert.Equal(t, int64(1), *bookings.deletedID)

	// Уведомление администратору об удалении, ровно одно
	require.Len(t, notifications.notifications, 1)
	assert.Contains(t, notifications.notifications[0].Text, "Бронирование #1 удалено")
}

func TestDelete_NotFound(t *testing.T) {
	notifications := &fakeNotificationRepo{}
	svc := newService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, &fakeChatRepo{}, notifications)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, notifications.notifications)
}

func TestGetByID(t *testing.T) {
	svc := newService(&fakeBookingRepo{byID: map[int64]*domain.Booking{1: pendingBooking(1)}}, &fakeChatRepo{}, &fakeNotificationRepo{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Al Noor Pitch", resp.Venue.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := newService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, &fakeChatRepo{}, &fakeNotificationRepo{})

	status := "cancelled"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
