package nearby_venues

import "errors"

var (
	// ErrPositionUnavailable возвращается, когда геопозиция пользователя недоступна
	ErrPositionUnavailable = errors.New("nearby_venues: position unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("nearby_venues: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("nearby_venues: internal error")
)
