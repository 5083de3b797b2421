package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	Total         int                    `json:"total"`
}

// FromDomainNotification конвертирует domain модель в response
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Text:      n.Text,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в response
func FromDomainNotificationList(notifications []*domain.Notification, unreadCount int) *NotificationListResponse {
	result := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, *FromDomainNotification(n))
	}

	return &NotificationListResponse{
		Notifications: result,
		UnreadCount:   unreadCount,
		Total:         len(result),
	}
}
