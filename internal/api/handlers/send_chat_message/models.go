package send_chat_message

import "github.com/m04kA/SVP-BookingService/internal/service/chats/models"

// SendMessageRequest HTTP модель запроса на отправку сообщения.
// BookingID берется из пути, а не из тела
type SendMessageRequest struct {
	Sender   string  `json:"sender"` // user | admin
	Text     string  `json:"text"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *SendMessageRequest) ToServiceRequest(bookingID int64) *models.SendMessageRequest {
	return &models.SendMessageRequest{
		BookingID: bookingID,
		Sender:    r.Sender,
		Text:      r.Text,
		ImageURL:  r.ImageURL,
	}
}
