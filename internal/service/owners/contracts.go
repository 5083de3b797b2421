package owners

import (
	"context"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
	List(ctx context.Context, status *domain.OwnerStatus) ([]*domain.Owner, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OwnerStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
