package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByCourtAndRange(ctx context.Context, courtID int64, from, to time.Time, excludeBookingID *int64) ([]*domain.Booking, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// PricingEngine интерфейс расчёта стоимости бронирования
type PricingEngine interface {
	Price(rate float64, start, end time.Time) (float64, error)
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
