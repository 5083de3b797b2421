package owners

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrAlreadyApproved возвращается при повторном одобрении заявки
	ErrAlreadyApproved = errors.New("owner is already approved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
