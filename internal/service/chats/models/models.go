package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения в чат бронирования
type SendMessageRequest struct {
	BookingID int64   `json:"bookingId"`
	Sender    string  `json:"sender"` // user | admin
	Text      string  `json:"text"`
	ImageURL  *string `json:"imageUrl,omitempty"` // Скриншот оплаты
}

// Response модели

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageListResponse ответ со списком сообщений чата
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}

// FromDomainMessage конвертирует domain модель в response
func FromDomainMessage(m *domain.ChatMessage) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		BookingID: m.BookingID,
		Sender:    string(m.Sender),
		Text:      m.Text,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainMessageList конвертирует список domain моделей в response
func FromDomainMessageList(messages []*domain.ChatMessage) *MessageListResponse {
	result := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, *FromDomainMessage(m))
	}

	return &MessageListResponse{
		Messages: result,
		Total:    len(result),
	}
}
