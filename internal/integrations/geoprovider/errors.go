package geoprovider

import "errors"

var (
	// ErrPositionUnavailable геолокация пользователя недоступна
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geoprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geoprovider client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что геосервис недоступен и ранжировать по расстоянию нельзя
	ErrServiceDegraded = errors.New("geoprovider unavailable: graceful degradation applied")
)
