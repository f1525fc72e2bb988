package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByCourtAndRange(ctx context.Context, courtID int64, from, to time.Time, excludeBookingID *int64) ([]*domain.Booking, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
