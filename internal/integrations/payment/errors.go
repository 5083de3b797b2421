package payment

import "errors"

var (
	// ErrPaymentDeclined платеж отклонен шлюзом
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrPaymentCancelled платеж отменен пользователем
	ErrPaymentCancelled = errors.New("payment cancelled by user")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payment client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("payment client: invalid response")
)
