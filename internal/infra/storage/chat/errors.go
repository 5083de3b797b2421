package chat

import "errors"

var (
	// ErrMessageNotFound сообщение не найдено
	ErrMessageNotFound = errors.New("chat message not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("failed to scan row")
)
