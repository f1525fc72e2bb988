package bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс менеджера транзакций
// Смена статуса выполняется в сериализуемой транзакции: чтение берет
// блокировку строки, и конкурентные переходы не затирают друг друга
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
