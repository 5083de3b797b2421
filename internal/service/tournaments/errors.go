package tournaments

import "errors"

var (
	// ErrTournamentNotFound возвращается, когда турнир не найден
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrAlreadyRegistered возвращается при повторной регистрации игрока
	ErrAlreadyRegistered = errors.New("player is already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
