package payment

// ChargeRequest запрос на списание средств
type ChargeRequest struct {
	Amount      float64 `json:"amount"`   // Сумма в валюте шлюза
	Currency    string  `json:"currency"` // Код валюты (SAR)
	Description string  `json:"description"`
}

// ChargeResponse ответ платежного шлюза
type ChargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"` // success | declined | cancelled
}

// Статусы платежа в ответе шлюза
const (
	statusSuccess   = "success"
	statusDeclined  = "declined"
	statusCancelled = "cancelled"
)

// ErrorResponse модель ошибки от платежного шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
