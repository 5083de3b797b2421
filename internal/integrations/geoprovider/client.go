package geoprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент геосервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геосервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCurrentPosition получает текущую геопозицию клиента по ID сессии
func (c *Client) GetCurrentPosition(ctx context.Context, sessionID string) (*Position, error) {
	url := fmt.Sprintf("%s/api/v1/sessions/%s/position", c.baseURL, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPositionUnavailable
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var pos Position
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &pos, nil
}

// GetCurrentPositionWithGracefulDegradation получает геопозицию с graceful degradation.
// При недоступности геосервиса возвращает ErrServiceDegraded: площадки
// показываются без ранжирования по расстоянию
func (c *Client) GetCurrentPositionWithGracefulDegradation(ctx context.Context, sessionID string) (*Position, error) {
	c.log.Info("Fetching position for session_id=%s", sessionID)

	pos, err := c.GetCurrentPosition(ctx, sessionID)
	if err != nil {
		// Отсутствие геолокации это бизнес-ситуация, пробрасываем дальше
		if err == ErrPositionUnavailable {
			c.log.Info("No position available for session_id=%s", sessionID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("Geo service unavailable, applying graceful degradation for session_id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: session_id=%s, error=%v", ErrServiceDegraded, sessionID, err)
	}

	c.log.Info("Successfully fetched position for session_id=%s", sessionID)
	return pos, nil
}
