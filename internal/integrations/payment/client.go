package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платежного шлюза
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Charge списывает средства за бронирование.
// Возвращает ID транзакции при успехе, ErrPaymentDeclined или
// ErrPaymentCancelled при отказе шлюза
func (c *Client) Charge(ctx context.Context, req ChargeRequest) (string, error) {
	url := fmt.Sprintf("%s/api/v1/charges", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Info("Charging %.2f %s via payment gateway", req.Amount, req.Currency)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusPaymentRequired:
		c.log.Warn("Payment declined by gateway")
		return "", ErrPaymentDeclined
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var charge ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	switch charge.Status {
	case statusSuccess:
		c.log.Info("Payment succeeded, transaction_id=%s", charge.TransactionID)
		return charge.TransactionID, nil
	case statusDeclined:
		c.log.Warn("Payment declined, transaction_id=%s", charge.TransactionID)
		return "", ErrPaymentDeclined
	case statusCancelled:
		c.log.Info("Payment cancelled by user, transaction_id=%s", charge.TransactionID)
		return "", ErrPaymentCancelled
	default:
		return "", fmt.Errorf("%w: unknown payment status %q", ErrInvalidResponse, charge.Status)
	}
}
