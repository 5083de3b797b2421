package chats

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SVP-BookingService/internal/service/chats/models"
	"github.com/m04kA/SVP-BookingService/pkg/ptr"
)

type fakeChatRepo struct {
	messages []*domain.ChatMessage
}

func (f *fakeChatRepo) Create(_ context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	created := *m
	created.ID = int64(len(f.messages) + 1)
	f.messages = append(f.messages, &created)
	return &created, nil
}

func (f *fakeChatRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.ChatMessage, error) {
	result := make([]*domain.ChatMessage, 0, len(f.messages))
	for _, m := range f.messages {
		if m.BookingID == bookingID {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakeBookingRepo struct {
	exists bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if !f.exists {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &domain.Booking{ID: id}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSendMessage_UserText(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewService(repo, &fakeBookingRepo{exists: true}, nopLogger{})

	resp, err := svc.SendMessage(context.Background(), &models.SendMessageRequest{
		BookingID: 1,
		Sender:    "user",
		Text:      "Перевод выполнен",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "user", resp.Sender)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "Перевод выполнен", repo.messages[0].Text)
}

func TestSendMessage_PaymentScreenshotWithoutText(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewService(repo, &fakeBookingRepo{exists: true}, nopLogger{})

	resp, err := svc.SendMessage(context.Background(), &models.SendMessageRequest{
		BookingID: 1,
		Sender:    "user",
		ImageURL:  ptr.Ptr("https://cdn.example.com/receipt.png"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "https://cdn.example.com/receipt.png", *resp.ImageURL)
}

func TestSendMessage_BookingNotFound(t *testing.T) {
	svc := NewService(&fakeChatRepo{}, &fakeBookingRepo{exists: false}, nopLogger{})

	_, err := svc.SendMessage(context.Background(), &models.SendMessageRequest{
		BookingID: 42,
		Sender:    "user",
		Text:      "Здравствуйте",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSendMessage_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.SendMessageRequest
	}{
		{
			name: "zero booking id",
			req:  &models.SendMessageRequest{BookingID: 0, Sender: "user", Text: "привет"},
		},
		{
			name: "unknown sender",
			req:  &models.SendMessageRequest{BookingID: 1, Sender: "manager", Text: "привет"},
		},
		{
			name: "empty text without image",
			req:  &models.SendMessageRequest{BookingID: 1, Sender: "user", Text: "   "},
		},
		{
			name: "text too long",
			req: &models.SendMessageRequest{
				BookingID: 1,
				Sender:    "user",
				Text:      strings.Repeat("а", domain.MaxChatTextLength+1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeChatRepo{}, &fakeBookingRepo{exists: true}, nopLogger{})

			_, err := svc.SendMessage(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListByBooking_ReturnsOnlyBookingMessages(t *testing.T) {
	repo := &fakeChatRepo{
		messages: []*domain.ChatMessage{
			{ID: 1, BookingID: 1, Sender: domain.SenderAdmin, Text: "Здравствуйте!"},
			{ID: 2, BookingID: 2, Sender: domain.SenderUser, Text: "Другой чат"},
			{ID: 3, BookingID: 1, Sender: domain.SenderUser, Text: "Оплатил"},
		},
	}
	svc := NewService(repo, &fakeBookingRepo{exists: true}, nopLogger{})

	resp, err := svc.ListByBooking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Здравствуйте!", resp.Messages[0].Text)
	assert.Equal(t, "Оплатил", resp.Messages[1].Text)
}

func TestListByBooking_BookingNotFound(t *testing.T) {
	svc := NewService(&fakeChatRepo{}, &fakeBookingRepo{exists: false}, nopLogger{})

	_, err := svc.ListByBooking(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
