package process_payment

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
