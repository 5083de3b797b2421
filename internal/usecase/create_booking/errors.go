package create_booking

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrDiscountNotFound возвращается, когда промокод не найден
	ErrDiscountNotFound = errors.New("create_booking: discount code not found")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят подтвержденным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время слота вне рабочих часов площадки
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrPaymentDeclined возвращается, когда платежный шлюз отклонил платеж
	ErrPaymentDeclined = errors.New("create_booking: payment declined")

	// ErrPaymentCancelled возвращается, когда пользователь отменил платеж
	ErrPaymentCancelled = errors.New("create_booking: payment cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
