package delete_discount

import "context"

// DiscountService интерфейс сервиса промокодов
type DiscountService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
