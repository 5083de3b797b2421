package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении оплаты
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")

	// ErrSlotTaken возвращается, когда слот уже занят другим подтвержденным
	// бронированием: администратор подтвердил оплату конкурента раньше
	ErrSlotTaken = errors.New("slot is taken by another confirmed booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
