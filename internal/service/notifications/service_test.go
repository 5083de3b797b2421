package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	notificationRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/notification"
)

type fakeNotificationRepo struct {
	notifications []*domain.Notification
}

func (f *fakeNotificationRepo) List(_ context.Context) ([]*domain.Notification, error) {
	return f.notifications, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id int64) error {
	for _, n := range f.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return notificationRepo.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context) error {
	for _, n := range f.notifications {
		n.Read = true
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList_WithUnreadCount(t *testing.T) {
	repo := &fakeNotificationRepo{
		notifications: []*domain.Notification{
			{ID: 3, Text: "Новое бронирование #3"},
			{ID: 2, Text: "Бронирование #1 подтверждено", Read: true},
			{ID: 1, Text: "Новое бронирование #1", Read: true},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.UnreadCount)
	assert.Equal(t, "Новое бронирование #3", resp.Notifications[0].Text)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeNotificationRepo{
		notifications: []*domain.Notification{{ID: 1, Text: "Новое бронирование #1"}},
	}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkRead(context.Background(), 1))
	assert.True(t, repo.notifications[0].Read)
}

func TestMarkRead_NotFound(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, nopLogger{})

	err := svc.MarkRead(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	repo := &fakeNotificationRepo{
		notifications: []*domain.Notification{
			{ID: 1, Text: "Новое бронирование #1"},
			{ID: 2, Text: "Новое бронирование #2"},
		},
	}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkAllRead(context.Background()))
	for _, n := range repo.notifications {
		assert.True(t, n.Read)
	}
}
